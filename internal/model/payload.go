package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrEmptyPayload is returned when a decoded payload carries no data.
var ErrEmptyPayload = errors.New("empty payload")

// Payload is the typed data of a category result.
type Payload interface {
	Len() int
	Validate() error
}

type (
	Validator struct {
		Address string `json:"address"`
		Stake   string `json:"stake"`
		Uptime  string `json:"uptime"`
		Blocks  int    `json:"blocks"`
		Status  string `json:"status"`
	}
	Validators []Validator

	RichListEntry struct {
		Rank       int    `json:"rank"`
		Address    string `json:"address"`
		Balance    string `json:"balance"`
		Percentage string `json:"percentage"`
	}
	RichList []RichListEntry

	Token struct {
		Name      string `json:"name"`
		Symbol    string `json:"symbol"`
		Address   string `json:"address"`
		Price     string `json:"price"`
		Change24h string `json:"change24h"`
		Volume24h string `json:"volume24h"`
		Holders   int    `json:"holders"`
	}
	Tokens []Token

	WhaleTransfer struct {
		TxHash    string `json:"txHash"`
		From      string `json:"from"`
		To        string `json:"to"`
		Amount    string `json:"amount"`
		AmountUSD string `json:"amountUSD"`
		Token     string `json:"token"`
		Timestamp int64  `json:"timestamp"`
		Type      string `json:"type"`
	}
	WhaleTransfers []WhaleTransfer

	DeFiProtocol struct {
		Name      string `json:"name"`
		TVL       string `json:"tvl"`
		Volume24h string `json:"volume24h"`
		Users24h  int    `json:"users24h"`
		APY       string `json:"apy"`
		Category  string `json:"category"`
		Risk      string `json:"risk"`
	}
	DeFiStats struct {
		Protocols      []DeFiProtocol `json:"protocols"`
		TotalTVL       string         `json:"totalTVL"`
		TotalVolume24h string         `json:"totalVolume24h"`
	}

	NFTCollection struct {
		Name        string `json:"name"`
		Address     string `json:"address"`
		FloorPrice  string `json:"floorPrice"`
		Volume24h   string `json:"volume24h"`
		Sales24h    int    `json:"sales24h"`
		Owners      int    `json:"owners"`
		TotalSupply int    `json:"totalSupply"`
		Change24h   string `json:"change24h"`
		MarketCap   string `json:"marketCap"`
	}
	NFTCollections []NFTCollection

	GasTiers struct {
		Slow     uint64 `json:"slow"`
		Standard uint64 `json:"standard"`
		Fast     uint64 `json:"fast"`
		BaseFee  string `json:"baseFee"`
	}
	GasSample struct {
		Hour      int    `json:"hour"`
		Slow      uint64 `json:"slow"`
		Standard  uint64 `json:"standard"`
		Fast      uint64 `json:"fast"`
		Timestamp int64  `json:"timestamp"`
	}
	GasRecommendations struct {
		Transfer string `json:"transfer"`
		Swap     string `json:"swap"`
		Mint     string `json:"mint"`
	}
	GasStats struct {
		Current         GasTiers           `json:"current"`
		History         []GasSample        `json:"history"`
		Recommendations GasRecommendations `json:"recommendations"`
	}

	MEVBot struct {
		Address      string `json:"address"`
		Extracted24h string `json:"extracted24h"`
		Transactions int    `json:"transactions"`
		SuccessRate  string `json:"successRate"`
		Strategy     string `json:"strategy"`
	}
	MEVEvent struct {
		TxHash    string `json:"txHash"`
		Block     uint64 `json:"block"`
		Profit    string `json:"profit"`
		Type      string `json:"type"`
		Timestamp int64  `json:"timestamp"`
	}
	MEVStats struct {
		TotalExtracted24h string     `json:"totalExtracted24h"`
		TopBots           []MEVBot   `json:"topBots"`
		Recent            []MEVEvent `json:"recentMEV"`
	}

	Bridge struct {
		Name            string `json:"name"`
		Volume24h       string `json:"volume24h"`
		Transactions24h int    `json:"transactions24h"`
		AvgTime         int    `json:"avgTime"`
		Fee             string `json:"fee"`
		Status          string `json:"status"`
	}
	Bridges []Bridge

	PriceData struct {
		Price     string `json:"price"`
		Change24h string `json:"change24h"`
		Volume24h string `json:"volume24h"`
		MarketCap string `json:"marketCap"`
	}

	Mempool struct {
		Pending uint64 `json:"pending"`
		Queued  uint64 `json:"queued"`
	}

	AccountToken struct {
		Name       string `json:"name"`
		Symbol     string `json:"symbol"`
		Address    string `json:"address"`
		Balance    string `json:"balance"`
		BalanceUSD string `json:"balanceUSD"`
		Price      string `json:"price"`
		Change24h  string `json:"change24h"`
	}
	AccountTokens []AccountToken

	AccountNFT struct {
		Collection      string `json:"collection"`
		ContractAddress string `json:"contractAddress"`
		Owned           int    `json:"owned"`
		FloorPrice      string `json:"floorPrice"`
		TotalValue      string `json:"totalValue"`
	}
	AccountNFTs []AccountNFT

	AccountActivityEntry struct {
		Hash        string `json:"hash"`
		BlockNumber uint64 `json:"blockNumber"`
		Timestamp   int64  `json:"timestamp"`
		From        string `json:"from"`
		To          string `json:"to"`
		Value       string `json:"value"`
		GasUsed     uint64 `json:"gasUsed"`
		GasPrice    string `json:"gasPrice"`
		Status      string `json:"status"`
		Type        string `json:"type"`
	}
	AccountActivity []AccountActivityEntry
)

func (p Validators) Len() int      { return len(p) }
func (p RichList) Len() int        { return len(p) }
func (p Tokens) Len() int          { return len(p) }
func (p WhaleTransfers) Len() int  { return len(p) }
func (p DeFiStats) Len() int       { return len(p.Protocols) }
func (p NFTCollections) Len() int  { return len(p) }
func (p MEVStats) Len() int        { return len(p.TopBots) + len(p.Recent) }
func (p Bridges) Len() int         { return len(p) }
func (p AccountTokens) Len() int   { return len(p) }
func (p AccountNFTs) Len() int     { return len(p) }
func (p AccountActivity) Len() int { return len(p) }

// Len is zero until a base fee has been observed.
func (p GasStats) Len() int {
	if p.Current.BaseFee == "" {
		return 0
	}
	return 1 + len(p.History)
}

func (p PriceData) Len() int {
	if p.Price == "" {
		return 0
	}
	return 1
}

// Len is always one: a zero mempool is a valid measurement.
func (p Mempool) Len() int { return 1 }

// Empty returns the zero value of the category shape with non-nil collections,
// or nil for a category outside the vocabulary.
func Empty(c Category) Payload {
	switch c {
	case CategoryValidators:
		return Validators{}
	case CategoryRichList:
		return RichList{}
	case CategoryTokens:
		return Tokens{}
	case CategoryWhales:
		return WhaleTransfers{}
	case CategoryDeFi:
		return DeFiStats{Protocols: []DeFiProtocol{}, TotalTVL: "0", TotalVolume24h: "0"}
	case CategoryNFTs:
		return NFTCollections{}
	case CategoryGas:
		return GasStats{History: []GasSample{}}
	case CategoryMEV:
		return MEVStats{TotalExtracted24h: "0", TopBots: []MEVBot{}, Recent: []MEVEvent{}}
	case CategoryBridges:
		return Bridges{}
	case CategoryPrice:
		return PriceData{}
	case CategoryMempool:
		return Mempool{}
	case CategoryAccountTokens:
		return AccountTokens{}
	case CategoryAccountNFTs:
		return AccountNFTs{}
	case CategoryAccountActivity:
		return AccountActivity{}
	default:
		return nil
	}
}

// DecodePayload decodes raw JSON into the category shape and validates it.
func DecodePayload(c Category, raw []byte) (Payload, error) {
	var (
		payload Payload
		err     error
	)
	switch c {
	case CategoryValidators:
		payload, err = decode[Validators](raw)
	case CategoryRichList:
		payload, err = decode[RichList](raw)
	case CategoryTokens:
		payload, err = decode[Tokens](raw)
	case CategoryWhales:
		payload, err = decode[WhaleTransfers](raw)
	case CategoryDeFi:
		payload, err = decode[DeFiStats](raw)
	case CategoryNFTs:
		payload, err = decode[NFTCollections](raw)
	case CategoryGas:
		payload, err = decode[GasStats](raw)
	case CategoryMEV:
		payload, err = decode[MEVStats](raw)
	case CategoryBridges:
		payload, err = decode[Bridges](raw)
	case CategoryPrice:
		payload, err = decode[PriceData](raw)
	case CategoryMempool:
		payload, err = decode[Mempool](raw)
	case CategoryAccountTokens:
		payload, err = decode[AccountTokens](raw)
	case CategoryAccountNFTs:
		payload, err = decode[AccountNFTs](raw)
	case CategoryAccountActivity:
		payload, err = decode[AccountActivity](raw)
	default:
		return nil, fmt.Errorf("unknown category %q", c)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", c, err)
	}
	if payload.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", c, ErrEmptyPayload)
	}
	if err := payload.Validate(); err != nil {
		return nil, fmt.Errorf("validate %s: %w", c, err)
	}
	return payload, nil
}

func decode[T Payload](raw []byte) (T, error) {
	var v T
	if len(raw) == 0 {
		return v, ErrEmptyPayload
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, err
	}
	return v, nil
}
