package messaging

import (
	"net/url"
	"strings"
)

// WhatsAppURL builds the wa.me deep link that opens an outbound message to
// the given phone. The phone is reduced to digits only; an empty result
// means the client has no usable phone and returns "".
func WhatsAppURL(phone, message string) string {
	digits := digitsOnly(phone)
	if digits == "" {
		return ""
	}
	return "https://wa.me/" + digits + "?text=" + url.QueryEscape(message)
}

// NormalizePhone reduces a phone to digits and prefixes defaultCountry when
// the number is stored without one. A number written with a leading '+' or
// already longer than ten digits is assumed to carry its country code.
func NormalizePhone(phone, defaultCountry string) string {
	digits := digitsOnly(phone)
	if digits == "" {
		return ""
	}
	if defaultCountry != "" && !strings.HasPrefix(strings.TrimSpace(phone), "+") && len(digits) <= 10 {
		return digitsOnly(defaultCountry) + digits
	}
	return digits
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
