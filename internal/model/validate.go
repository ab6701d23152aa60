package model

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/shopspring/decimal"
)

func checkAddress(field string, i int, v string) error {
	if !common.IsHexAddress(v) {
		return fmt.Errorf("%s[%d]: invalid address %q", field, i, v)
	}
	return nil
}

func checkHash(field string, i int, v string) error {
	if len(v) != 2+2*common.HashLength {
		return fmt.Errorf("%s[%d]: invalid hash %q", field, i, v)
	}
	if _, err := hexutil.Decode(v); err != nil {
		return fmt.Errorf("%s[%d]: invalid hash %q: %w", field, i, v, err)
	}
	return nil
}

// checkAmount accepts decimal strings; an empty optional amount is allowed.
func checkAmount(field string, i int, v string, optional bool) error {
	if v == "" && optional {
		return nil
	}
	if _, err := decimal.NewFromString(v); err != nil {
		return fmt.Errorf("%s[%d]: invalid amount %q", field, i, v)
	}
	return nil
}

func (p Validators) Validate() error {
	for i, v := range p {
		if err := checkAddress("validators", i, v.Address); err != nil {
			return err
		}
		if err := checkAmount("validators.stake", i, v.Stake, false); err != nil {
			return err
		}
	}
	return nil
}

func (p RichList) Validate() error {
	for i, v := range p {
		if err := checkAddress("richlist", i, v.Address); err != nil {
			return err
		}
		if err := checkAmount("richlist.balance", i, v.Balance, false); err != nil {
			return err
		}
	}
	return nil
}

func (p Tokens) Validate() error {
	for i, v := range p {
		if v.Symbol == "" {
			return fmt.Errorf("tokens[%d]: missing symbol", i)
		}
		if err := checkAddress("tokens", i, v.Address); err != nil {
			return err
		}
		if err := checkAmount("tokens.price", i, v.Price, true); err != nil {
			return err
		}
	}
	return nil
}

func (p WhaleTransfers) Validate() error {
	for i, v := range p {
		if err := checkHash("whales", i, v.TxHash); err != nil {
			return err
		}
		if err := checkAddress("whales.from", i, v.From); err != nil {
			return err
		}
		if err := checkAddress("whales.to", i, v.To); err != nil {
			return err
		}
		if err := checkAmount("whales.amount", i, v.Amount, false); err != nil {
			return err
		}
	}
	return nil
}

func (p DeFiStats) Validate() error {
	for i, v := range p.Protocols {
		if v.Name == "" {
			return fmt.Errorf("defi[%d]: missing name", i)
		}
		if err := checkAmount("defi.tvl", i, v.TVL, false); err != nil {
			return err
		}
	}
	return checkAmount("defi.totalTVL", 0, p.TotalTVL, true)
}

func (p NFTCollections) Validate() error {
	for i, v := range p {
		if v.Name == "" {
			return fmt.Errorf("nfts[%d]: missing name", i)
		}
		if err := checkAddress("nfts", i, v.Address); err != nil {
			return err
		}
	}
	return nil
}

func (p GasStats) Validate() error {
	if err := checkAmount("gas.baseFee", 0, p.Current.BaseFee, false); err != nil {
		return err
	}
	if p.Current.Slow > p.Current.Standard || p.Current.Standard > p.Current.Fast {
		return fmt.Errorf("gas: tiers out of order %d/%d/%d", p.Current.Slow, p.Current.Standard, p.Current.Fast)
	}
	return nil
}

func (p MEVStats) Validate() error {
	for i, v := range p.TopBots {
		if err := checkAddress("mev.topBots", i, v.Address); err != nil {
			return err
		}
	}
	for i, v := range p.Recent {
		if err := checkHash("mev.recent", i, v.TxHash); err != nil {
			return err
		}
	}
	return nil
}

func (p Bridges) Validate() error {
	for i, v := range p {
		if v.Name == "" {
			return fmt.Errorf("bridges[%d]: missing name", i)
		}
	}
	return nil
}

func (p PriceData) Validate() error {
	return checkAmount("price", 0, p.Price, false)
}

func (p Mempool) Validate() error { return nil }

func (p AccountTokens) Validate() error {
	for i, v := range p {
		if err := checkAddress("accountTokens", i, v.Address); err != nil {
			return err
		}
		if err := checkAmount("accountTokens.balance", i, v.Balance, false); err != nil {
			return err
		}
	}
	return nil
}

func (p AccountNFTs) Validate() error {
	for i, v := range p {
		if err := checkAddress("accountNFTs", i, v.ContractAddress); err != nil {
			return err
		}
	}
	return nil
}

func (p AccountActivity) Validate() error {
	for i, v := range p {
		if err := checkHash("accountActivity", i, v.Hash); err != nil {
			return err
		}
	}
	return nil
}
