package bank

// CaixaSIGCBLayout is Caixa Econômica Federal, SIGCB collection model.
//
// Wallet 1 is registered collection ("RG"), anything else is unregistered
// ("SR"). Issuance origin 4 means the slip was issued by the beneficiary.
// The free field is
//
//	agency identifier(6) dv(1) nn[2:5] nn[0:1] nn[5:8] nn[1:2] nn[8:]
//
// where nn is wallet + origin + 15-digit tracking number.
var CaixaSIGCBLayout = Layout{
	Code:  "104",
	Name:  "Caixa Econômica Federal",
	Model: "SIGCB",

	AccountWidth:          5,
	AgencyIdentifierWidth: 6,
	TrackingWidth:         15,
	IssuanceOrigin:        "4",

	RegisteredWallet:  1,
	RegisteredLabel:   "RG",
	UnregisteredLabel: "SR",
	Wallets:           []int{1, 2},

	FreeField: []FieldKind{
		FieldAgencyIdentifier,
		FieldAgencyIdentifierCheck,
		FieldTrackingNumber,
	},
	TrackingSlices: []Slice{
		{From: 2, To: 5},
		{From: 0, To: 1},
		{From: 5, To: 8},
		{From: 1, To: 2},
		{From: 8, To: End},
	},
	FreeFieldOffset: 18,
}

// CaixaSIGCB returns the Caixa SIGCB profile.
func CaixaSIGCB() Profile {
	return NewProfile(CaixaSIGCBLayout)
}
