package domain

// Table is a mongo collection name
type Table string

const (
	TableAdmins                Table = "admins"
	TableQualifyingCollections Table = "qualifying_collections"
	TableListings              Table = "listings"
	TableListingActivities     Table = "listing_activities"
	TableCounters              Table = "counters"
)
