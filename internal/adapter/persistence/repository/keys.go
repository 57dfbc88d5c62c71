package repository

// Key layout of the key-value store, one value per owner and concern.
const (
	quotesKeyPrefix  = "photo_quotes_"
	clientsKeyPrefix = "photo_clients_"
	profileKeyPrefix = "photo_profile_"
)

func QuotesKey(ownerID string) string  { return quotesKeyPrefix + ownerID }
func ClientsKey(ownerID string) string { return clientsKeyPrefix + ownerID }
func ProfileKey(ownerID string) string { return profileKeyPrefix + ownerID }
