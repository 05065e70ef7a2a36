package paymentmethod

import (
	"encoding/json"
	"fmt"
	"strings"
)

// requiredDetailKeys maps each known method type to the keys its
// account_details payload must carry.
var requiredDetailKeys = map[string][]string{
	TypeBank:   {"bank_name", "account_name", "account_number"},
	TypeESewa:  {"esewa_id", "account_name"},
	TypeKhalti: {"khalti_id", "account_name"},
	TypeUPI:    {"upi_id"},
}

// ValidateAccountDetails checks that raw is a JSON object carrying the
// keys required for methodType. Unknown method types only need a valid
// non-empty JSON object.
func ValidateAccountDetails(methodType string, raw []byte) error {
	var details map[string]interface{}
	if err := json.Unmarshal(raw, &details); err != nil {
		return fmt.Errorf("account_details must be a JSON object: %w", err)
	}
	if len(details) == 0 {
		return fmt.Errorf("account_details must not be empty")
	}

	required, known := requiredDetailKeys[strings.ToLower(methodType)]
	if !known {
		return nil
	}

	var missing []string
	for _, key := range required {
		v, ok := details[key]
		if !ok {
			missing = append(missing, key)
			continue
		}
		if s, isString := v.(string); isString && strings.TrimSpace(s) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("account_details for type %q missing: %s", methodType, strings.Join(missing, ", "))
	}
	return nil
}

// Instructions returns donor-facing guidance per method type, with a
// generic fallback for types added later.
func Instructions(methodType string) string {
	switch strings.ToLower(methodType) {
	case TypeBank:
		return "Transfer to the bank account below and upload your deposit slip."
	case TypeESewa:
		return "Send via eSewa to the ID below and upload a screenshot of the confirmation."
	case TypeKhalti:
		return "Send via Khalti to the ID below and upload a screenshot of the confirmation."
	case TypeUPI:
		return "Pay via UPI to the ID below and upload a screenshot of the confirmation."
	default:
		return "Contact us for payment instructions for this method."
	}
}
