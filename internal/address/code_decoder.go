package address

import (
	"bytes"

	"github.com/ashitosh07/monad-explorer/internal/model"
	"github.com/ethereum/go-ethereum/crypto"
)

const (
	opPush1  = 0x60
	opPush4  = 0x63
	opPush32 = 0x7f
)

// minimalProxyPrefix opens every EIP-1167 clone runtime.
var minimalProxyPrefix = []byte{0x36, 0x3d, 0x3d, 0x37, 0x3d, 0x3d, 0x3d, 0x36, 0x3d, 0x73}

type selector [4]byte

func selectorOf(signature string) selector {
	var s selector
	copy(s[:], crypto.Keccak256([]byte(signature))[:4])
	return s
}

// contractSignature matches when the bytecode embeds all of `all` and, if
// set, at least one of `any`.
type contractSignature struct {
	contract model.ContractType
	all      []selector
	any      []selector
}

// contractSignatures are checked in order; the first match wins.
var contractSignatures = []contractSignature{
	{
		contract: model.ContractMultisig,
		all: []selector{
			selectorOf("getOwners()"),
			selectorOf("getThreshold()"),
		},
		any: []selector{
			selectorOf("execTransaction(address,uint256,bytes,uint8,uint256,uint256,uint256,address,address,bytes)"),
			selectorOf("submitTransaction(address,uint256,bytes)"),
		},
	},
	{
		contract: model.ContractDEXRouter,
		any: []selector{
			selectorOf("swapExactTokensForTokens(uint256,uint256,address[],address,uint256)"),
			selectorOf("swapExactETHForTokens(uint256,address[],address,uint256)"),
			selectorOf("exactInputSingle((address,address,uint24,address,uint256,uint256,uint256,uint160))"),
		},
	},
	{
		contract: model.ContractLendingPool,
		any: []selector{
			selectorOf("borrow(address,uint256,uint256,uint16,address)"),
			selectorOf("liquidationCall(address,address,address,uint256,bool)"),
			selectorOf("flashLoan(address,address[],uint256[],uint256[],address,bytes,uint16)"),
		},
	},
	{
		contract: model.ContractBridge,
		any: []selector{
			selectorOf("bridgeETHTo(address,uint32,bytes)"),
			selectorOf("depositForBurn(uint256,uint32,bytes32,address)"),
			selectorOf("sendMessage(address,bytes,uint32)"),
		},
	},
	{
		contract: model.ContractERC721,
		all: []selector{
			selectorOf("ownerOf(uint256)"),
			selectorOf("safeTransferFrom(address,address,uint256)"),
		},
	},
	{
		contract: model.ContractERC20,
		all: []selector{
			selectorOf("transfer(address,uint256)"),
			selectorOf("balanceOf(address)"),
			selectorOf("totalSupply()"),
		},
	},
}

// ClassifyContract guesses the contract kind from runtime bytecode. Empty
// code is not a contract and yields nil.
func ClassifyContract(code []byte) *model.ContractType {
	if len(code) == 0 {
		return nil
	}
	contract := classify(code)
	return &contract
}

func classify(code []byte) model.ContractType {
	if bytes.HasPrefix(code, minimalProxyPrefix) {
		return model.ContractMinimalProxy
	}
	selectors := pushedSelectors(code)
	for _, sig := range contractSignatures {
		if sig.matches(selectors) {
			return sig.contract
		}
	}
	return model.ContractGeneric
}

func (s contractSignature) matches(selectors map[selector]struct{}) bool {
	for _, sel := range s.all {
		if _, ok := selectors[sel]; !ok {
			return false
		}
	}
	if len(s.any) == 0 {
		return true
	}
	for _, sel := range s.any {
		if _, ok := selectors[sel]; ok {
			return true
		}
	}
	return false
}

// pushedSelectors walks the bytecode and collects every PUSH4 immediate.
// Immediates of other PUSH opcodes are skipped so data bytes are never read
// as instructions.
func pushedSelectors(code []byte) map[selector]struct{} {
	out := make(map[selector]struct{})
	for i := 0; i < len(code); i++ {
		op := code[i]
		if op < opPush1 || op > opPush32 {
			continue
		}
		size := int(op-opPush1) + 1
		if op == opPush4 && i+size < len(code) {
			var s selector
			copy(s[:], code[i+1:i+1+size])
			out[s] = struct{}{}
		}
		i += size
	}
	return out
}
