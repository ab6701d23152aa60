// Package address builds deterministic profiles of ledger accounts.
package address

import (
	"math/big"

	"github.com/ashitosh07/monad-explorer/internal/model"
	"github.com/shopspring/decimal"
)

const (
	maxRiskScore     = 100
	riskPerTx        = 2
	highRiskAbove    = 70
	mediumRiskAbove  = 40
	newBelowTxs      = 5
	activeFromTxs    = 100
	highActivityTxs  = 1_000
	botFromTxs       = 5_000
	exchangeFromTxs  = 50_000
	whaleFromMON     = 100_000
	exchangeFromMON  = 10_000
	botBelowMON      = 1
	balancePrecision = 4
)

const (
	FactorHighFrequency  = "High transaction frequency"
	FactorKnownProtocols = "Interacts with known protocols"
	FactorAutomated      = "Automated transaction pattern"
	FactorLargeHolder    = "Large balance holder"
	FactorNoSuspicious   = "No suspicious patterns detected"
)

// Readings are the ledger values a profile is derived from. A nil Balance
// or TxCount, or Code with CodeRead unset, was not read.
type Readings struct {
	Balance  *big.Int
	TxCount  *uint64
	Code     []byte
	CodeRead bool
}

// Analyze derives the profile of an account from its balance (wei), nonce
// and runtime bytecode. It is pure: equal inputs give equal profiles.
func Analyze(address string, balance *big.Int, txCount uint64, code []byte) model.AddressProfile {
	if balance == nil {
		balance = new(big.Int)
	}
	return AnalyzeReadings(address, Readings{Balance: balance, TxCount: &txCount, Code: code, CodeRead: true})
}

// AnalyzeReadings derives only what the available readings support: no
// balance means no balance labels, no nonce means no risk score and no
// activity labels, no code means no contract classification and no labels
// reserved to externally owned accounts.
func AnalyzeReadings(address string, r Readings) model.AddressProfile {
	f := facts{hasBalance: r.Balance != nil, hasTxCount: r.TxCount != nil, hasCode: r.CodeRead}
	profile := model.AddressProfile{Address: address}

	if f.hasBalance {
		f.balance = model.WeiToMON(r.Balance)
		profile.Balance = r.Balance.String()
		profile.BalanceFormatted = f.balance.StringFixed(balancePrecision)
	} else {
		profile.Missing = append(profile.Missing, model.ReadingBalance)
	}
	score := 0
	if f.hasTxCount {
		f.txCount = *r.TxCount
		score = RiskScore(f.txCount)
		profile.TxCount = f.txCount
		profile.RiskScore = score
		profile.RiskLevel = RiskLevel(score)
	} else {
		profile.Missing = append(profile.Missing, model.ReadingTxCount)
	}
	if f.hasCode {
		f.contract = ClassifyContract(r.Code)
		profile.IsContract = f.contract != nil
		profile.ContractType = f.contract
	} else {
		profile.Missing = append(profile.Missing, model.ReadingCode)
	}

	profile.Partial = len(profile.Missing) > 0
	profile.Labels = f.labels()
	profile.RiskFactors = riskFactors(score, f.hasTxCount, profile.Labels)
	return profile
}

// RiskScore is twice the transaction count, capped at 100.
func RiskScore(txCount uint64) int {
	if txCount >= maxRiskScore/riskPerTx {
		return maxRiskScore
	}
	return int(txCount) * riskPerTx
}

func RiskLevel(score int) model.RiskLevel {
	switch {
	case score > highRiskAbove:
		return model.RiskHigh
	case score > mediumRiskAbove:
		return model.RiskMedium
	default:
		return model.RiskLow
	}
}

// Labels applies the fixed thresholds and returns labels in vocabulary order.
func Labels(balanceMON decimal.Decimal, txCount uint64, contractType *model.ContractType) []model.Label {
	return facts{
		balance:    balanceMON,
		hasBalance: true,
		txCount:    txCount,
		hasTxCount: true,
		contract:   contractType,
		hasCode:    true,
	}.labels()
}

type facts struct {
	balance    decimal.Decimal
	hasBalance bool
	txCount    uint64
	hasTxCount bool
	contract   *model.ContractType
	hasCode    bool
}

func (f facts) labels() []model.Label {
	eoa := f.hasCode && f.contract == nil
	var contract model.ContractType
	if f.contract != nil {
		contract = *f.contract
	}

	labels := make([]model.Label, 0, 3)
	if eoa && f.hasTxCount && f.hasBalance &&
		f.txCount >= exchangeFromTxs && f.balance.GreaterThanOrEqual(decimal.NewFromInt(exchangeFromMON)) {
		labels = append(labels, model.LabelExchange)
	}
	if contract == model.ContractDEXRouter || contract == model.ContractLendingPool {
		labels = append(labels, model.LabelDeFi)
	}
	if f.hasBalance && f.balance.GreaterThanOrEqual(decimal.NewFromInt(whaleFromMON)) {
		labels = append(labels, model.LabelWhale)
	}
	if eoa && f.hasTxCount && f.hasBalance &&
		f.txCount >= botFromTxs && f.balance.LessThan(decimal.NewFromInt(botBelowMON)) {
		labels = append(labels, model.LabelBot)
	}
	if contract == model.ContractBridge {
		labels = append(labels, model.LabelBridge)
	}
	if !f.hasTxCount {
		return labels
	}
	if f.txCount < newBelowTxs {
		labels = append(labels, model.LabelNew)
	}
	if f.txCount >= activeFromTxs {
		labels = append(labels, model.LabelActive)
	}
	if f.txCount >= highActivityTxs {
		labels = append(labels, model.LabelHighActivity)
	}
	return labels
}

func riskFactors(score int, scored bool, labels []model.Label) []string {
	factors := make([]string, 0, 3)
	if scored && score > highRiskAbove {
		factors = append(factors, FactorHighFrequency)
	}
	for _, l := range labels {
		switch l {
		case model.LabelDeFi, model.LabelBridge:
			factors = append(factors, FactorKnownProtocols)
		case model.LabelBot:
			factors = append(factors, FactorAutomated)
		case model.LabelWhale:
			factors = append(factors, FactorLargeHolder)
		}
	}
	if scored && score <= mediumRiskAbove {
		factors = append(factors, FactorNoSuspicious)
	}
	return factors
}
