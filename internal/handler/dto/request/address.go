package request

import (
	"storefront-api/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

type AddressRequest struct {
	Label       string  `json:"label" binding:"required"`
	Recipient   string  `json:"recipient" binding:"required"`
	Line1       string  `json:"line1" binding:"required"`
	Line2       *string `json:"line2,omitempty"`
	City        string  `json:"city" binding:"required"`
	PostalCode  string  `json:"postal_code" binding:"required"`
	CountryCode string  `json:"country_code" binding:"required,len=2"`
	IsDefault   bool    `json:"is_default"`
}

func (r AddressRequest) ToCommand() (commands.NewAddress, error) {
	var cmd commands.NewAddress
	if err := copier.Copy(&cmd, &r); err != nil {
		return commands.NewAddress{}, err
	}
	return cmd, nil
}
