package model

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// MONDecimals is the number of decimals of the native token.
const MONDecimals = 18

// WeiToMON converts a wei amount to MON. A nil amount is zero.
func WeiToMON(wei *big.Int) decimal.Decimal {
	if wei == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(wei, -MONDecimals)
}

// WeiToGwei converts a wei amount to gwei. A nil amount is zero.
func WeiToGwei(wei *big.Int) decimal.Decimal {
	if wei == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(wei, -9)
}

// FeeMON returns gasUsed * baseFee (a decimal wei string) in MON.
// An unparsable base fee yields zero.
func FeeMON(gasUsed uint64, baseFeeWei string) decimal.Decimal {
	baseFee, err := decimal.NewFromString(baseFeeWei)
	if err != nil {
		return decimal.Zero
	}
	return decimal.NewFromUint64(gasUsed).Mul(baseFee).Shift(-MONDecimals)
}
