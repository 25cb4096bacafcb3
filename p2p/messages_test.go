package p2p

import (
	"encoding/json"
	"testing"

	"goledger/blockchain"
)

func TestQueryMessagesCarryNoData(t *testing.T) {
	for _, msgType := range []MessageType{MessageTypeQueryLatest, MessageTypeQueryAll} {
		msg, err := NewMessage(msgType, nil)
		if err != nil {
			t.Fatalf("NewMessage(%s) error = %v", msgType, err)
		}
		if msg.Data != nil {
			t.Errorf("NewMessage(%s) has data %s, want none", msgType, msg.Data)
		}

		encoded, err := json.Marshal(msg)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}

		var decoded Message
		if err := json.Unmarshal(encoded, &decoded); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if decoded.Type != msgType {
			t.Errorf("round-tripped type = %s, want %s", decoded.Type, msgType)
		}
	}
}

func TestChainResponseRoundTrip(t *testing.T) {
	blocks := []blockchain.Block{
		blockchain.GenesisBlock,
		blockchain.NextBlock(blockchain.GenesisBlock, "hello"),
	}

	msg, err := NewChainResponse(blocks)
	if err != nil {
		t.Fatalf("NewChainResponse() error = %v", err)
	}
	if msg.Type != MessageTypeChainResponse {
		t.Fatalf("type = %s, want %s", msg.Type, MessageTypeChainResponse)
	}

	encoded, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded Message
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	parsed, err := decoded.ParseBlocks()
	if err != nil {
		t.Fatalf("ParseBlocks() error = %v", err)
	}
	if len(parsed) != 2 {
		t.Fatalf("ParseBlocks() returned %d blocks, want 2", len(parsed))
	}
	if parsed[0] != blocks[0] || parsed[1] != blocks[1] {
		t.Error("blocks did not survive the round trip")
	}
}

func TestParseBlocksRejectsMalformedData(t *testing.T) {
	msg := &Message{
		Type: MessageTypeChainResponse,
		Data: json.RawMessage(`{"not": "a block list"}`),
	}
	if _, err := msg.ParseBlocks(); err == nil {
		t.Error("ParseBlocks() accepted malformed data")
	}
}

func TestUnknownTypeStillDecodes(t *testing.T) {
	// Unknown variants must decode cleanly so the handler can ignore them
	// without tearing the connection down.
	var msg Message
	if err := json.Unmarshal([]byte(`{"type":"bogus","data":{}}`), &msg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if msg.Type != "bogus" {
		t.Errorf("type = %s, want bogus", msg.Type)
	}
}
