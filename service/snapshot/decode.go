package snapshot

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/elC0mpa/flow-doctor/model"
)

// lookbackResponse is the envelope returned by the snapshot query API. Exports
// saved from it keep the envelope; hand-made exports are a bare array.
type lookbackResponse struct {
	Results []model.RawSnapshot `json:"Results"`
}

// Decode reads snapshots from either a JSON array or an object holding the
// array under "Results".
func Decode(r io.Reader) ([]model.RawSnapshot, error) {
	br := bufio.NewReader(r)
	first, err := firstToken(br)
	if err != nil {
		return nil, err
	}

	decoder := json.NewDecoder(br)
	switch first {
	case '[':
		var snapshots []model.RawSnapshot
		if err := decoder.Decode(&snapshots); err != nil {
			return nil, fmt.Errorf("failed to decode snapshot array: %w", err)
		}
		return snapshots, nil
	case '{':
		var response lookbackResponse
		if err := decoder.Decode(&response); err != nil {
			return nil, fmt.Errorf("failed to decode snapshot response: %w", err)
		}
		return response.Results, nil
	default:
		return nil, fmt.Errorf("unexpected character %q, expected a JSON array or object", first)
	}
}

func firstToken(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			return 0, fmt.Errorf("empty snapshot document")
		}
		if err != nil {
			return 0, fmt.Errorf("failed to read snapshot document: %w", err)
		}
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return b, br.UnreadByte()
	}
}
