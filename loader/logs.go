package loader

import (
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/tidwall/gjson"

	"github.com/cosmos/abidecoder/types"

	errorsmod "cosmossdk.io/errors"
)

// logPaths are tried in order on an object payload.
var logPaths = []string{"logs", "result", "result.logs"}

// ParseLogs extracts log records from raw JSON. It accepts a bare array of
// logs, a transaction receipt ("logs"), or a JSON-RPC response whose result
// is either a log array (eth_getLogs) or a receipt.
func ParseLogs(raw []byte) ([]types.Log, error) {
	if !gjson.ValidBytes(raw) {
		return nil, errorsmod.Wrap(types.ErrCodec, "invalid JSON log payload")
	}

	doc := gjson.ParseBytes(raw)
	if doc.IsArray() {
		return parseLogArray(doc)
	}
	if doc.IsObject() {
		if rpcErr := doc.Get("error.message"); rpcErr.Exists() {
			return nil, errorsmod.Wrapf(types.ErrCodec, "rpc error: %s", rpcErr.String())
		}
		for _, path := range logPaths {
			if res := doc.Get(path); res.IsArray() {
				return parseLogArray(res)
			}
		}
	}
	return nil, errorsmod.Wrap(types.ErrCodec, "no log array found in payload")
}

func parseLogArray(arr gjson.Result) ([]types.Log, error) {
	items := arr.Array()
	logs := make([]types.Log, 0, len(items))
	for i, item := range items {
		if !item.IsObject() {
			return nil, errorsmod.Wrapf(types.ErrCodec, "log %d is not an object", i)
		}
		l, err := parseLog(item)
		if err != nil {
			return nil, errorsmod.Wrapf(err, "log %d", i)
		}
		logs = append(logs, l)
	}
	return logs, nil
}

func parseLog(item gjson.Result) (types.Log, error) {
	l := types.Log{
		Address: item.Get("address").String(),
		Data:    item.Get("data").String(),
		TxHash:  item.Get("transactionHash").String(),
	}

	topics := item.Get("topics").Array()
	l.Topics = make([]string, len(topics))
	for i, topic := range topics {
		l.Topics[i] = topic.String()
	}

	var err error
	if l.BlockNumber, err = quantity(item.Get("blockNumber")); err != nil {
		return types.Log{}, errorsmod.Wrap(err, "blockNumber")
	}
	if l.LogIndex, err = quantity(item.Get("logIndex")); err != nil {
		return types.Log{}, errorsmod.Wrap(err, "logIndex")
	}
	return l, nil
}

// quantity reads a JSON-RPC quantity, given either as a "0x" hex string or a
// plain number. Absent fields read as zero.
func quantity(res gjson.Result) (uint64, error) {
	switch res.Type {
	case gjson.Null:
		return 0, nil
	case gjson.Number:
		return res.Uint(), nil
	}

	s := res.String()
	if !strings.HasPrefix(s, types.HexPrefix) {
		return res.Uint(), nil
	}
	n, err := hexutil.DecodeUint64(s)
	if err != nil {
		return 0, errorsmod.Wrapf(types.ErrNumericParse, "%q: %s", s, err)
	}
	return n, nil
}

// FromEthLog converts a go-ethereum log. The address is kept in its EIP-55
// form, topics and data are lowercase hex.
func FromEthLog(l *ethtypes.Log) types.Log {
	topics := make([]string, len(l.Topics))
	for i, topic := range l.Topics {
		topics[i] = topic.Hex()
	}
	return types.Log{
		Address:     l.Address.Hex(),
		Topics:      topics,
		Data:        hexutil.Encode(l.Data),
		BlockNumber: l.BlockNumber,
		TxHash:      l.TxHash.Hex(),
		LogIndex:    uint64(l.Index),
	}
}

// FromEthLogs converts a batch of go-ethereum logs. Nil entries are skipped.
func FromEthLogs(logs []*ethtypes.Log) []types.Log {
	out := make([]types.Log, 0, len(logs))
	for _, l := range logs {
		if l == nil {
			continue
		}
		out = append(out, FromEthLog(l))
	}
	return out
}
