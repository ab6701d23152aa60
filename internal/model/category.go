package model

// Category names a curated data feed.
type Category string

const (
	CategoryValidators      Category = "validators"
	CategoryRichList        Category = "richlist"
	CategoryTokens          Category = "tokens"
	CategoryWhales          Category = "whales"
	CategoryDeFi            Category = "defi"
	CategoryNFTs            Category = "nfts"
	CategoryGas             Category = "gas"
	CategoryMEV             Category = "mev"
	CategoryBridges         Category = "bridges"
	CategoryPrice           Category = "price"
	CategoryMempool         Category = "mempool"
	CategoryAccountTokens   Category = "account_tokens"
	CategoryAccountNFTs     Category = "account_nfts"
	CategoryAccountActivity Category = "account_activity"
)

// PollCategories are refreshed on every poll cycle.
var PollCategories = []Category{
	CategoryValidators,
	CategoryRichList,
	CategoryTokens,
	CategoryWhales,
	CategoryDeFi,
	CategoryNFTs,
	CategoryGas,
	CategoryMEV,
	CategoryBridges,
	CategoryPrice,
	CategoryMempool,
}

// AccountCategories are resolved per address on demand.
var AccountCategories = []Category{
	CategoryAccountTokens,
	CategoryAccountNFTs,
	CategoryAccountActivity,
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, known := range PollCategories {
		if c == known {
			return true
		}
	}
	return c.IsAccount()
}

// IsAccount reports whether c requires an address parameter.
func (c Category) IsAccount() bool {
	for _, known := range AccountCategories {
		if c == known {
			return true
		}
	}
	return false
}

type CategoryStatus string

const (
	StatusOK       CategoryStatus = "ok"
	StatusDegraded CategoryStatus = "degraded"
	StatusFallback CategoryStatus = "fallback"
	StatusError    CategoryStatus = "error"
)

// CategoryResult carries a category payload and the provider that produced it.
// Data is never nil.
type CategoryResult struct {
	Category Category       `json:"category"`
	Status   CategoryStatus `json:"status"`
	Data     Payload        `json:"data"`
	Source   string         `json:"source"`
}

// Params are provider inputs for a single resolution.
type Params map[string]string

const ParamAddress = "address"
