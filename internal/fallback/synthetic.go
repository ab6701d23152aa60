package fallback

import (
	"context"
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"slices"
	"sort"
	"time"

	"github.com/ashitosh07/monad-explorer/internal/clock"
	"github.com/ashitosh07/monad-explorer/internal/model"
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

var (
	syntheticTokens     = []string{"USDC", "USDT", "WETH", "DAI", "LINK"}
	syntheticBridges    = []string{"Ethereum", "Polygon", "Arbitrum", "Optimism", "BSC", "Avalanche"}
	syntheticStrategies = []string{"Arbitrage", "Sandwich", "Liquidation", "Front-running"}
	syntheticTransfers  = []string{"Transfer", "Swap", "Deposit", "Withdrawal"}
	syntheticCalls      = []string{"Transfer", "Contract Call", "Swap", "Approve"}

	syntheticProtocols = []struct {
		name, category, risk string
		tvl                  float64
	}{
		{"MonadSwap", "DEX", "Medium", 1_000_000},
		{"MonadLend", "Lending", "Low", 500_000},
		{"MonadStake", "Staking", "Low", 2_000_000},
		{"MonadYield", "Yield", "High", 300_000},
	}
	syntheticCollections = []struct {
		name, address, floor string
		supply               int
	}{
		{"Monad Genesis", "0x1000000000000000000000000000000000000001", "0.01", 1000},
		{"Monad Validators", "0x1000000000000000000000000000000000000002", "0.005", 500},
		{"Monad Testnet Heroes", "0x1000000000000000000000000000000000000003", "0.002", 10000},
		{"Monad Builders", "0x1000000000000000000000000000000000000004", "0.001", 5000},
	}
)

// Synthetic generates stand-in data for every category. Output is a pure
// function of the seed, category, params and the current time bucket.
type Synthetic struct {
	seed   uint64
	bucket time.Duration
	clock  clock.Clock
}

func NewSynthetic(seed uint64, bucket time.Duration) *Synthetic {
	if bucket <= 0 {
		bucket = DefaultSyntheticBucket
	}
	return &Synthetic{seed: seed, bucket: bucket, clock: clock.System{}}
}

func (s *Synthetic) Name() string { return ProviderSynthetic }

func (s *Synthetic) Fetch(ctx context.Context, category model.Category, params model.Params) (model.Payload, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := s.clock.Now().Truncate(s.bucket)
	g := &generator{r: s.rand(category, params, start), now: start.Unix()}

	switch category {
	case model.CategoryValidators:
		return g.validators(), nil
	case model.CategoryRichList:
		return g.richList(), nil
	case model.CategoryTokens:
		return g.tokens(), nil
	case model.CategoryWhales:
		return g.whales(), nil
	case model.CategoryDeFi:
		return g.defi(), nil
	case model.CategoryNFTs:
		return g.nfts(), nil
	case model.CategoryGas:
		return g.gas(), nil
	case model.CategoryMEV:
		return g.mev(), nil
	case model.CategoryBridges:
		return g.bridges(), nil
	case model.CategoryPrice:
		return g.price(), nil
	case model.CategoryMempool:
		return model.Mempool{Pending: uint64(g.r.IntN(5000)), Queued: uint64(g.r.IntN(500))}, nil
	}

	address := params[model.ParamAddress]
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("synthetic %s: address %q: %w", category, address, model.ErrInvalidQuery)
	}
	switch category {
	case model.CategoryAccountTokens:
		return g.accountTokens(), nil
	case model.CategoryAccountNFTs:
		return g.accountNFTs(), nil
	case model.CategoryAccountActivity:
		return g.accountActivity(common.HexToAddress(address).Hex()), nil
	}
	return nil, fmt.Errorf("synthetic %s: %w", category, ErrSkipped)
}

func (s *Synthetic) rand(category model.Category, params model.Params, bucket time.Time) *rand.Rand {
	h := fnv.New64a()
	_, _ = h.Write([]byte(category))
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		_, _ = h.Write([]byte{0})
		_, _ = h.Write([]byte(k + "=" + params[k]))
	}
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(bucket.Unix()))
	_, _ = h.Write(b[:])
	return rand.New(rand.NewPCG(s.seed, h.Sum64()))
}

type generator struct {
	r   *rand.Rand
	now int64
}

func (g *generator) between(lo, hi float64) float64 {
	return lo + g.r.Float64()*(hi-lo)
}

func (g *generator) amount(lo, hi float64, places int32) string {
	return decimal.NewFromFloat(g.between(lo, hi)).StringFixed(places)
}

func (g *generator) pick(from []string) string {
	return from[g.r.IntN(len(from))]
}

func (g *generator) address() string {
	var b [common.AddressLength]byte
	g.fill(b[:])
	return common.BytesToAddress(b[:]).Hex()
}

func (g *generator) hash() string {
	var b [common.HashLength]byte
	g.fill(b[:])
	return common.BytesToHash(b[:]).Hex()
}

func (g *generator) fill(b []byte) {
	for i := 0; i < len(b); i += 8 {
		var chunk [8]byte
		binary.LittleEndian.PutUint64(chunk[:], g.r.Uint64())
		copy(b[i:], chunk[:])
	}
}

// recent returns a timestamp within the day before the bucket start.
func (g *generator) recent() int64 {
	return g.now - int64(g.r.IntN(86_400))
}

func (g *generator) validators() model.Validators {
	stakes := make([]float64, 20)
	for i := range stakes {
		stakes[i] = g.between(1_000, 11_000)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(stakes)))

	out := make(model.Validators, 0, len(stakes))
	for _, stake := range stakes {
		status := "active"
		if g.r.Float64() < 0.1 {
			status = "inactive"
		}
		out = append(out, model.Validator{
			Address: g.address(),
			Stake:   decimal.NewFromFloat(stake).StringFixed(2),
			Uptime:  g.amount(90, 100, 1),
			Blocks:  g.r.IntN(1000),
			Status:  status,
		})
	}
	return out
}

func (g *generator) richList() model.RichList {
	balances := make([]float64, 50)
	for i := range balances {
		balances[i] = g.between(10_000, 1_010_000)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(balances)))

	out := make(model.RichList, 0, len(balances))
	for i, balance := range balances {
		out = append(out, model.RichListEntry{
			Rank:       i + 1,
			Address:    g.address(),
			Balance:    decimal.NewFromFloat(balance).StringFixed(2),
			Percentage: g.amount(0.1, 5.1, 3),
		})
	}
	return out
}

func (g *generator) tokens() model.Tokens {
	out := make(model.Tokens, 0, len(syntheticTokens))
	for _, symbol := range syntheticTokens {
		out = append(out, model.Token{
			Name:      symbol,
			Symbol:    symbol,
			Address:   g.address(),
			Price:     g.amount(1, 1001, 2),
			Change24h: g.amount(-10, 10, 2),
			Volume24h: g.amount(0, 10_000_000, 0),
			Holders:   1000 + g.r.IntN(100_000),
		})
	}
	return out
}

func (g *generator) whales() model.WhaleTransfers {
	out := make(model.WhaleTransfers, 0, 50)
	for i := 0; i < 50; i++ {
		out = append(out, model.WhaleTransfer{
			TxHash:    g.hash(),
			From:      g.address(),
			To:        g.address(),
			Amount:    g.amount(1_000, 11_000, 2),
			AmountUSD: g.amount(100_000, 1_100_000, 0),
			Token:     g.pick(syntheticTokens[:4]),
			Timestamp: g.recent(),
			Type:      g.pick(syntheticTransfers),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp > out[j].Timestamp })
	return out
}

func (g *generator) defi() model.DeFiStats {
	stats := model.DeFiStats{Protocols: make([]model.DeFiProtocol, 0, len(syntheticProtocols))}
	totalTVL, totalVolume := decimal.Zero, decimal.Zero
	for _, p := range syntheticProtocols {
		tvl := decimal.NewFromFloat(g.between(p.tvl/10, p.tvl*1.1)).Round(0)
		volume := decimal.NewFromFloat(g.between(p.tvl/100, p.tvl/10)).Round(0)
		totalTVL = totalTVL.Add(tvl)
		totalVolume = totalVolume.Add(volume)
		stats.Protocols = append(stats.Protocols, model.DeFiProtocol{
			Name:      p.name,
			TVL:       tvl.String(),
			Volume24h: volume.String(),
			Users24h:  20 + g.r.IntN(500),
			APY:       g.amount(3, 28, 2),
			Category:  p.category,
			Risk:      p.risk,
		})
	}
	stats.TotalTVL = totalTVL.String()
	stats.TotalVolume24h = totalVolume.String()
	return stats
}

func (g *generator) nfts() model.NFTCollections {
	out := make(model.NFTCollections, 0, len(syntheticCollections))
	for _, c := range syntheticCollections {
		floor := decimal.RequireFromString(c.floor)
		out = append(out, model.NFTCollection{
			Name:        c.name,
			Address:     c.address,
			FloorPrice:  c.floor,
			Volume24h:   g.amount(0, 10, 3),
			Sales24h:    1 + g.r.IntN(20),
			Owners:      100 + g.r.IntN(c.supply/2),
			TotalSupply: c.supply,
			Change24h:   g.amount(-15, 15, 2),
			MarketCap:   floor.Mul(decimal.NewFromInt(int64(c.supply))).String(),
		})
	}
	return out
}

func (g *generator) tiers() (slow, standard, fast uint64) {
	slow = uint64(10 + g.r.IntN(20))
	standard = slow + uint64(g.r.IntN(20))
	fast = standard + uint64(5+g.r.IntN(30))
	return slow, standard, fast
}

func (g *generator) gas() model.GasStats {
	slow, standard, fast := g.tiers()
	stats := model.GasStats{
		Current: model.GasTiers{
			Slow:     slow,
			Standard: standard,
			Fast:     fast,
			BaseFee:  decimal.NewFromUint64(slow).String(),
		},
		History:         make([]model.GasSample, 0, 24),
		Recommendations: defaultRecommendations,
	}
	for hour := 0; hour < 24; hour++ {
		slow, standard, fast := g.tiers()
		stats.History = append(stats.History, model.GasSample{
			Hour:      hour,
			Slow:      slow,
			Standard:  standard,
			Fast:      fast,
			Timestamp: g.now - int64(23-hour)*3600,
		})
	}
	return stats
}

func (g *generator) mev() model.MEVStats {
	stats := model.MEVStats{
		TotalExtracted24h: g.amount(0, 1_000_000, 2),
		TopBots:           make([]model.MEVBot, 0, 10),
		Recent:            make([]model.MEVEvent, 0, 20),
	}
	for i := 0; i < 10; i++ {
		stats.TopBots = append(stats.TopBots, model.MEVBot{
			Address:      g.address(),
			Extracted24h: g.amount(0, 100_000, 2),
			Transactions: 100 + g.r.IntN(1000),
			SuccessRate:  g.amount(70, 100, 1),
			Strategy:     g.pick(syntheticStrategies),
		})
	}
	for i := 0; i < 20; i++ {
		stats.Recent = append(stats.Recent, model.MEVEvent{
			TxHash:    g.hash(),
			Block:     uint64(2_000_000 + g.r.IntN(1_000_000)),
			Profit:    g.amount(0, 10_000, 2),
			Type:      g.pick(syntheticStrategies[:3]),
			Timestamp: g.recent(),
		})
	}
	return stats
}

func (g *generator) bridges() model.Bridges {
	out := make(model.Bridges, 0, len(syntheticBridges))
	for _, name := range syntheticBridges {
		status := "active"
		if g.r.Float64() < 0.1 {
			status = "maintenance"
		}
		out = append(out, model.Bridge{
			Name:            name,
			Volume24h:       g.amount(0, 100_000_000, 0),
			Transactions24h: 1000 + g.r.IntN(10_000),
			AvgTime:         60 + g.r.IntN(600),
			Fee:             g.amount(5, 55, 2),
			Status:          status,
		})
	}
	return out
}

func (g *generator) price() model.PriceData {
	return model.PriceData{
		Price:     g.amount(50, 150, 2),
		Change24h: g.amount(-10, 10, 2),
		Volume24h: g.amount(0, 10_000_000, 0),
		MarketCap: g.amount(0, 1_000_000_000, 0),
	}
}

func (g *generator) accountTokens() model.AccountTokens {
	n := 1 + g.r.IntN(len(syntheticTokens))
	out := make(model.AccountTokens, 0, n)
	for _, symbol := range syntheticTokens[:n] {
		balance := decimal.NewFromFloat(g.between(0, 10_000)).Round(4)
		price := decimal.NewFromFloat(g.between(1, 1001)).Round(2)
		out = append(out, model.AccountToken{
			Name:       symbol,
			Symbol:     symbol,
			Address:    g.address(),
			Balance:    balance.String(),
			BalanceUSD: balance.Mul(price).StringFixed(2),
			Price:      price.StringFixed(2),
			Change24h:  g.amount(-10, 10, 2),
		})
	}
	return out
}

func (g *generator) accountNFTs() model.AccountNFTs {
	n := 1 + g.r.IntN(len(syntheticCollections))
	out := make(model.AccountNFTs, 0, n)
	for _, c := range syntheticCollections[:n] {
		owned := 1 + g.r.IntN(5)
		floor := decimal.RequireFromString(c.floor)
		out = append(out, model.AccountNFT{
			Collection:      c.name,
			ContractAddress: c.address,
			Owned:           owned,
			FloorPrice:      c.floor,
			TotalValue:      floor.Mul(decimal.NewFromInt(int64(owned))).String(),
		})
	}
	return out
}

func (g *generator) accountActivity(address string) model.AccountActivity {
	out := make(model.AccountActivity, 0, 10)
	for i := 0; i < 10; i++ {
		from, to := address, g.address()
		if g.r.IntN(2) == 0 {
			from, to = to, address
		}
		status := "success"
		if g.r.Float64() < 0.05 {
			status = "failed"
		}
		out = append(out, model.AccountActivityEntry{
			Hash:        g.hash(),
			BlockNumber: uint64(1_000_000 + g.r.IntN(1_000_000)),
			Timestamp:   g.recent(),
			From:        from,
			To:          to,
			Value:       g.amount(0, 100, 4),
			GasUsed:     uint64(21_000 + g.r.IntN(200_000)),
			GasPrice:    decimal.NewFromInt(int64(10+g.r.IntN(40))).Shift(9).String(),
			Status:      status,
			Type:        g.pick(syntheticCalls),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp > out[j].Timestamp })
	return out
}
