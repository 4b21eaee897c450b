package api

import (
	"context"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	quiztypes "github.com/hoot-chain/hoot/x/quiz/types"
)

// ErrNotFound is returned when the queried key has no value in state.
var ErrNotFound = errors.New("not found")

// StateReader resolves quiz state records for the gateway handlers.
type StateReader interface {
	QuizSet(ctx context.Context, quizID uint64) (*quiztypes.QuizSet, error)
	QuestionBlock(ctx context.Context, quizID uint64, questionIndex uint32) (*quiztypes.QuestionBlock, error)
	Topic(ctx context.Context, name string) (*quiztypes.Topic, error)
}

// RPCStateReader reads quiz state through a node's CometBFT RPC endpoint
// using raw ABCI store queries. State records are stored as JSON, so no
// codec beyond encoding/json is needed on this side.
type RPCStateReader struct {
	rpcAddr string
	client  *http.Client
}

// NewRPCStateReader creates a state reader against the given RPC address.
func NewRPCStateReader(rpcAddr string) *RPCStateReader {
	return &RPCStateReader{
		rpcAddr: rpcAddr,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// QuizSet fetches one quiz set by id.
func (r *RPCStateReader) QuizSet(ctx context.Context, quizID uint64) (*quiztypes.QuizSet, error) {
	bz, err := r.queryStore(ctx, quiztypes.QuizSetKey(quizID))
	if err != nil {
		return nil, err
	}

	var quizSet quiztypes.QuizSet
	if err := json.Unmarshal(bz, &quizSet); err != nil {
		return nil, fmt.Errorf("failed to decode quiz set %d: %w", quizID, err)
	}
	return &quizSet, nil
}

// QuestionBlock fetches one question ciphertext block.
func (r *RPCStateReader) QuestionBlock(ctx context.Context, quizID uint64, questionIndex uint32) (*quiztypes.QuestionBlock, error) {
	bz, err := r.queryStore(ctx, quiztypes.QuestionBlockKey(quizID, questionIndex))
	if err != nil {
		return nil, err
	}

	var block quiztypes.QuestionBlock
	if err := json.Unmarshal(bz, &block); err != nil {
		return nil, fmt.Errorf("failed to decode question block %d/%d: %w", quizID, questionIndex, err)
	}
	return &block, nil
}

// Topic fetches one topic by name.
func (r *RPCStateReader) Topic(ctx context.Context, name string) (*quiztypes.Topic, error) {
	bz, err := r.queryStore(ctx, quiztypes.TopicKey(name))
	if err != nil {
		return nil, err
	}

	var topic quiztypes.Topic
	if err := json.Unmarshal(bz, &topic); err != nil {
		return nil, fmt.Errorf("failed to decode topic %q: %w", name, err)
	}
	return &topic, nil
}

// queryStore issues an abci_query against the quiz module store and returns
// the raw value bytes. An empty value maps to ErrNotFound.
func (r *RPCStateReader) queryStore(ctx context.Context, key []byte) ([]byte, error) {
	query := url.Values{}
	query.Set("path", `"/store/quiz/key"`)
	query.Set("data", "0x"+hex.EncodeToString(key))

	endpoint := fmt.Sprintf("%s/abci_query?%s", r.rpcAddr, query.Encode())
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rpc unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rpc returned status %d", resp.StatusCode)
	}

	var result struct {
		Result struct {
			Response struct {
				Code  uint32 `json:"code"`
				Log   string `json:"log"`
				Value string `json:"value"`
			} `json:"response"`
		} `json:"result"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode rpc response: %w", err)
	}

	if result.Result.Response.Code != 0 {
		return nil, fmt.Errorf("abci query failed: %s", result.Result.Response.Log)
	}

	if result.Result.Response.Value == "" {
		return nil, ErrNotFound
	}

	bz, err := base64.StdEncoding.DecodeString(result.Result.Response.Value)
	if err != nil {
		return nil, fmt.Errorf("failed to decode value: %w", err)
	}
	if len(bz) == 0 {
		return nil, ErrNotFound
	}

	return bz, nil
}
