package p2p

import (
	"encoding/json"

	"goledger/blockchain"
)

// MessageType tags a wire message. The protocol has exactly three variants;
// ProcessMessage dispatches on all of them and ignores anything else.
type MessageType string

const (
	MessageTypeQueryLatest   MessageType = "query_latest"
	MessageTypeQueryAll      MessageType = "query_all"
	MessageTypeChainResponse MessageType = "chain_response"
)

// Message is the serialized envelope carried between peers. Data is absent
// for the two query variants and a JSON block sequence for chain responses.
type Message struct {
	Type MessageType     `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// NewMessage builds an envelope of the given type around payload.
// A nil payload produces an envelope with no data.
func NewMessage(msgType MessageType, payload interface{}) (*Message, error) {
	msg := &Message{Type: msgType}
	if payload == nil {
		return msg, nil
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	msg.Data = json.RawMessage(data)
	return msg, nil
}

// NewChainResponse wraps blocks in a chain_response envelope.
func NewChainResponse(blocks []blockchain.Block) (*Message, error) {
	return NewMessage(MessageTypeChainResponse, blocks)
}

// ParseBlocks unmarshals a chain_response payload.
func (m *Message) ParseBlocks() ([]blockchain.Block, error) {
	var blocks []blockchain.Block
	if err := json.Unmarshal(m.Data, &blocks); err != nil {
		return nil, err
	}
	return blocks, nil
}
