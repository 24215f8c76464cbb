package entities

// Delivery form field names, as submitted by the checkout page.
const (
	FieldRecipientName = "recipient_name"
	FieldPostalCode    = "postal_code"
	FieldAddress       = "address"
	FieldDetailAddress = "detail_address"
	FieldPhone1        = "phone1"
	FieldPhone2        = "phone2"
	FieldPhone3        = "phone3"
	FieldEmailID       = "email_id"
	FieldEmailDomain   = "email_domain"
	FieldMemo          = "memo"
)

// DeliveryForm holds the delivery section of the checkout page.
//
// The validate tags drive the field validators: "notblank" fails on values
// that are empty after trimming, "phone" fails on characters outside digits,
// spaces, '-', '(', ')' and '+'.
type DeliveryForm struct {
	RecipientName string `json:"recipient_name" validate:"notblank"`
	PostalCode    string `json:"postal_code"`
	Address       string `json:"address" validate:"notblank"`
	DetailAddress string `json:"detail_address"`
	Phone1        string `json:"phone1" validate:"notblank,phone"`
	Phone2        string `json:"phone2" validate:"notblank,phone"`
	Phone3        string `json:"phone3" validate:"notblank,phone"`
	EmailID       string `json:"email_id" validate:"notblank"`
	EmailDomain   string `json:"email_domain" validate:"notblank"`
	Memo          string `json:"memo"`
}

// Email joins the id and domain parts.
func (f DeliveryForm) Email() string {
	if f.EmailID == "" || f.EmailDomain == "" {
		return ""
	}
	return f.EmailID + "@" + f.EmailDomain
}

// Field returns the value of a named field and whether the name is known.
func (f DeliveryForm) Field(name string) (string, bool) {
	switch name {
	case FieldRecipientName:
		return f.RecipientName, true
	case FieldPostalCode:
		return f.PostalCode, true
	case FieldAddress:
		return f.Address, true
	case FieldDetailAddress:
		return f.DetailAddress, true
	case FieldPhone1:
		return f.Phone1, true
	case FieldPhone2:
		return f.Phone2, true
	case FieldPhone3:
		return f.Phone3, true
	case FieldEmailID:
		return f.EmailID, true
	case FieldEmailDomain:
		return f.EmailDomain, true
	case FieldMemo:
		return f.Memo, true
	}
	return "", false
}

// WithField returns a copy with the named field set. Unknown names are ignored.
func (f DeliveryForm) WithField(name, value string) DeliveryForm {
	switch name {
	case FieldRecipientName:
		f.RecipientName = value
	case FieldPostalCode:
		f.PostalCode = value
	case FieldAddress:
		f.Address = value
	case FieldDetailAddress:
		f.DetailAddress = value
	case FieldPhone1:
		f.Phone1 = value
	case FieldPhone2:
		f.Phone2 = value
	case FieldPhone3:
		f.Phone3 = value
	case FieldEmailID:
		f.EmailID = value
	case FieldEmailDomain:
		f.EmailDomain = value
	case FieldMemo:
		f.Memo = value
	}
	return f
}
