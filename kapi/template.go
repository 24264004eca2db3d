package kapi

import (
	"net/url"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Pricing is the "commerce" block of a commerce template.
type Pricing struct {
	RegularPrice  int
	DiscountPrice int
	DiscountRate  int
}

// DefaultPricing is used for any price that the fixture does not set.
var DefaultPricing = Pricing{
	RegularPrice:  68900,
	DiscountPrice: 49700,
	DiscountRate:  27,
}

// PricingFromFixture reads regular_price, discount_price, and discount_rate from the
// commerce fixture, falling back to DefaultPricing for each one that is not a number.
func PricingFromFixture(fixture ldvalue.Value) Pricing {
	p := DefaultPricing
	read := func(key string, into *int) {
		if v := fixture.GetByKey(key); v.IsNumber() {
			*into = v.IntValue()
		}
	}
	read("regular_price", &p.RegularPrice)
	read("discount_price", &p.DiscountPrice)
	read("discount_rate", &p.DiscountRate)
	return p
}

// CommerceTemplate builds a template object of type "commerce" from the fixture. The fixture
// is not validated: missing fields are carried as nulls, and the API is left to reject them.
func CommerceTemplate(fixture ldvalue.Value, pricing Pricing) ldvalue.Value {
	links := fixture.GetByKey("links")

	buttons := ldvalue.ArrayBuild()
	fixtureButtons := fixture.GetByKey("buttons")
	for i := 0; i < fixtureButtons.Count(); i++ {
		b := fixtureButtons.GetByIndex(i)
		buttons.Add(ldvalue.ObjectBuild().
			Set("title", b.GetByKey("title")).
			Set("link", linkObject(b)).
			Build())
	}

	return ldvalue.ObjectBuild().
		Set("object_type", ldvalue.String("commerce")).
		Set("content", ldvalue.ObjectBuild().
			Set("title", fixture.GetByKey("title")).
			Set("image_url", links.GetByKey("image_url")).
			Set("link", linkObject(links)).
			Build()).
		Set("commerce", ldvalue.ObjectBuild().
			Set("regular_price", ldvalue.Int(pricing.RegularPrice)).
			Set("discount_price", ldvalue.Int(pricing.DiscountPrice)).
			Set("discount_rate", ldvalue.Int(pricing.DiscountRate)).
			Build()).
		Set("buttons", buttons.Build()).
		Build()
}

func linkObject(from ldvalue.Value) ldvalue.Value {
	return ldvalue.ObjectBuild().
		Set("web_url", from.GetByKey("web_url")).
		Set("mobile_web_url", from.GetByKey("mobile_web_url")).
		Build()
}

// TemplateForm serializes a template object into the template_object form field.
func TemplateForm(template ldvalue.Value) url.Values {
	return RawTemplateForm(template.JSONString())
}

// RawTemplateForm puts an arbitrary string, which need not be JSON, in the template_object
// form field.
func RawTemplateForm(templateObject string) url.Values {
	return url.Values{TemplateObjectField: []string{templateObject}}
}
