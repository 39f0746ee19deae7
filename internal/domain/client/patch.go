package client

// Partial updates flow in through closed patch types: every field that may
// legally be updated is enumerated here, and a nil field means "leave
// untouched". The two client patches are deliberately disjoint so that a
// basic-info save can never erase the additional info and vice versa.

// BasicInfoPatch updates the client's basic fields
type BasicInfoPatch struct {
	Name          *string
	Phone         *string
	PaymentDay    *int
	MarketingInfo *string
	Instagram     *string
	Facebook      *string
}

// ClientInfoPatch updates the client's additional info
type ClientInfoPatch struct {
	GeneralNotes        *string
	Meetings            *[]Meeting
	SocialNetworks      *[]SocialNetwork
	BrandingURL         *string
	PublicationSchedule *string
}

// PackagePatch updates a single package inside the client's package list
type PackagePatch struct {
	Name              *string
	TotalPublications *int
	UsedPublications  *int
	Month             *string
	Paid              *bool
}
