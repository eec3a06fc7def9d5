package model

// AdType is the detected kind of financial advertisement.
type AdType string

const (
	AdTypeMutualFund     AdType = "mutual_fund"
	AdTypeInvesting      AdType = "investing"
	AdTypeTrading        AdType = "trading"
	AdTypeIPO            AdType = "ipo"
	AdTypeFnODerivatives AdType = "fno_derivatives"
	AdTypeOther          AdType = "other"
)

// AdTypes lists every known ad type in a stable order.
var AdTypes = []AdType{
	AdTypeMutualFund,
	AdTypeInvesting,
	AdTypeTrading,
	AdTypeIPO,
	AdTypeFnODerivatives,
	AdTypeOther,
}

// Valid reports whether t is one of AdTypes.
func (t AdType) Valid() bool {
	for _, known := range AdTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Classification is the body returned by the classify endpoint.
type Classification struct {
	DetectedType AdType `json:"detected_type"`
}
