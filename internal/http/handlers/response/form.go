package response

import "reachout/internal/core/domain/profile"

type Form struct {
	Slug             string  `json:"slug"`
	FormTitle        string  `json:"form_title"`
	IntroMessage     *string `json:"intro_message"`
	SubmitLabel      string  `json:"submit_label"`
	ThankyouMessage  string  `json:"thankyou_message"`
	PrivacyURL       *string `json:"privacy_url"`
	FormPrimaryColor string  `json:"form_primary_color"`
	FormBgColor      string  `json:"form_bg_color"`
}

func (f *Form) FromDomainType(p profile.Profile) {
	f.Slug = string(p.Slug)
	f.FormTitle = p.FormTitle
	if p.IntroMessage.IsPresent {
		intro := p.IntroMessage.Value
		f.IntroMessage = &intro
	}
	f.SubmitLabel = p.SubmitLabel
	f.ThankyouMessage = p.ThankyouMessage
	if p.PrivacyURL.IsPresent {
		privacyURL := p.PrivacyURL.Value
		f.PrivacyURL = &privacyURL
	}
	f.FormPrimaryColor = p.FormPrimaryColor
	f.FormBgColor = p.FormBgColor
}
