package model

type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

type Label string

const (
	LabelExchange     Label = "Exchange"
	LabelDeFi         Label = "DeFi"
	LabelWhale        Label = "Whale"
	LabelBot          Label = "Bot"
	LabelBridge       Label = "Bridge"
	LabelNew          Label = "New"
	LabelActive       Label = "Active"
	LabelHighActivity Label = "High Activity"
)

type ContractType string

const (
	ContractGeneric      ContractType = "Smart Contract"
	ContractERC20        ContractType = "ERC20 Token"
	ContractERC721       ContractType = "ERC721 NFT"
	ContractMultisig     ContractType = "Multisig Wallet"
	ContractDEXRouter    ContractType = "DEX Router"
	ContractLendingPool  ContractType = "Lending Pool"
	ContractBridge       ContractType = "Bridge"
	ContractMinimalProxy ContractType = "Minimal Proxy"
)

// AddressProfile is derived on demand from balance, nonce and bytecode.
type AddressProfile struct {
	Address          string        `json:"address"`
	Balance          string        `json:"balance"`
	BalanceFormatted string        `json:"balanceFormatted"`
	TxCount          uint64        `json:"transactionCount"`
	IsContract       bool          `json:"isContract"`
	ContractType     *ContractType `json:"contractType"`
	RiskScore        int           `json:"riskScore"`
	RiskLevel        RiskLevel     `json:"riskLevel"`
	RiskFactors      []string      `json:"riskFactors"`
	Labels           []Label       `json:"labels"`
	// Partial is set when some of the underlying lookups failed; Missing
	// names them. Fields and signals derived from a missing reading are left
	// at their zero value.
	Partial bool     `json:"partial,omitempty"`
	Missing []string `json:"missing,omitempty"`
}

// Names of the account readings a profile is derived from.
const (
	ReadingBalance = "balance"
	ReadingTxCount = "transactionCount"
	ReadingCode    = "code"
)
