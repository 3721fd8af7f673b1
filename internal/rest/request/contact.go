package request

import "github.com/Guyuepp/portfolio-cms/domain"

type Contact struct {
	Service      string `json:"service"`
	Message      string `json:"message"`
	DiscountCode string `json:"discountCode"`
}

func (r *Contact) ToDomain() domain.ContactMessage {
	return domain.ContactMessage{
		Service:      r.Service,
		Message:      r.Message,
		DiscountCode: r.DiscountCode,
	}
}
