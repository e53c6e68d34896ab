package store

import "github.com/ethereum/go-ethereum/common"

type dbLog struct {
	ID          int64          `meddler:"id,pk"`
	ChainID     uint64         `meddler:"chain_id"`
	Address     common.Address `meddler:"address,address"`
	BlockNumber uint64         `meddler:"block_number"`
	BlockHash   common.Hash    `meddler:"block_hash,hash"`
	TxHash      common.Hash    `meddler:"tx_hash,hash"`
	TxIndex     uint           `meddler:"tx_index"`
	LogIndex    uint           `meddler:"log_index"`
	Topic0      *common.Hash   `meddler:"topic0,hash"`
	Topic1      *common.Hash   `meddler:"topic1,hash"`
	Topic2      *common.Hash   `meddler:"topic2,hash"`
	Topic3      *common.Hash   `meddler:"topic3,hash"`
	Data        []byte         `meddler:"data"`
}

const logColumns = `id, chain_id, address, block_number, block_hash, tx_hash, tx_index, log_index,
	topic0, topic1, topic2, topic3, data`

type dbCoverage struct {
	ID         int64          `meddler:"id,pk"`
	ChainID    uint64         `meddler:"chain_id"`
	Address    common.Address `meddler:"address,address"`
	FilterHash common.Hash    `meddler:"filter_hash,hash"`
	FromBlock  uint64         `meddler:"from_block"`
	ToBlock    uint64         `meddler:"to_block"`
}

const coverageColumns = `id, chain_id, address, filter_hash, from_block, to_block`

type dbCall struct {
	ChainID     uint64         `meddler:"chain_id"`
	To          common.Address `meddler:"to_address,address"`
	BlockNumber uint64         `meddler:"block_number"`
	DataHash    common.Hash    `meddler:"data_hash,hash"`
	Result      []byte         `meddler:"result"`
}
