// Copyright (c) 2026 Super 3000. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contact

import (
	"fmt"

	"github.com/taibuivan/super3000/internal/i18n"
)

// # Message Templates

// InquiryMessage renders form as a multi-line greeting in locale.
func InquiryMessage(locale i18n.Locale, form InquiryForm) string {
	if locale == i18n.Arabic {
		return fmt.Sprintf("السلام عليكم، أنا تاجر وأرغب في الاستفسار/طلب أوردر.\nالاسم: %s\nالهاتف: %s\nالمحافظة: %s\nالرسالة: %s",
			form.Name, form.Phone, form.City, form.Message)
	}
	return fmt.Sprintf("Hello, I am a trader and would like to inquire/place an order.\nName: %s\nPhone: %s\nGovernorate: %s\nMessage: %s",
		form.Name, form.Phone, form.City, form.Message)
}

// TraderMessage renders a registration request in locale. Optional fields
// left empty are shown as a dash.
func TraderMessage(locale i18n.Locale, form TraderForm) string {
	if locale == i18n.Arabic {
		return fmt.Sprintf("طلب تسجيل تاجر:\nاسم النشاط: %s\nمسؤول التواصل: %s\nالهاتف: %s\nالمدينة: %s\nالسجل الضريبي: %s\nملاحظات: %s",
			form.BusinessName, form.ContactPerson, form.Phone, form.City,
			orDash(form.TaxRecord, "—"), orDash(form.Notes, "—"))
	}
	return fmt.Sprintf("Trader registration request:\nBusiness: %s\nContact person: %s\nPhone: %s\nCity: %s\nTax record: %s\nNotes: %s",
		form.BusinessName, form.ContactPerson, form.Phone, form.City,
		orDash(form.TaxRecord, "-"), orDash(form.Notes, "-"))
}

// ProductMessage renders a request for one product in locale.
func ProductMessage(locale i18n.Locale, productName, categoryName string) string {
	if locale == i18n.Arabic {
		return fmt.Sprintf("طلب تاجر: %s - التصنيف: %s", productName, categoryName)
	}
	return fmt.Sprintf("Trader request: %s - Category: %s", productName, categoryName)
}

func orDash(value, dash string) string {
	if value == "" {
		return dash
	}
	return value
}
