package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/gin-gonic/gin"
	"github.com/iyhunko/inventory-manager/internal/config"
	httpAPI "github.com/iyhunko/inventory-manager/internal/http"
	"github.com/iyhunko/inventory-manager/internal/http/controller"
	"github.com/iyhunko/inventory-manager/internal/model"
	"github.com/iyhunko/inventory-manager/internal/repository/memory"
	"github.com/iyhunko/inventory-manager/internal/service"
	sqspkg "github.com/iyhunko/inventory-manager/internal/sqs"
	"github.com/stretchr/testify/require"
)

const testQueueURL = "http://localhost:4566/000000000000/inventory-test"

// MemoryQueue stands in for an SQS queue: it implements both the publisher
// and the consumer client interfaces.
type MemoryQueue struct {
	mu       sync.Mutex
	messages chan string
	inFlight map[string]string
	deleted  []string
	seq      int
}

// NewMemoryQueue creates an empty queue.
func NewMemoryQueue() *MemoryQueue {
	return &MemoryQueue{
		messages: make(chan string, 100),
		inFlight: make(map[string]string),
	}
}

func (q *MemoryQueue) SendMessage(_ context.Context, params *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	q.messages <- aws.ToString(params.MessageBody)
	return &sqs.SendMessageOutput{MessageId: aws.String("id")}, nil
}

func (q *MemoryQueue) ReceiveMessage(ctx context.Context, _ *sqs.ReceiveMessageInput, _ ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(20 * time.Millisecond):
		return &sqs.ReceiveMessageOutput{}, nil
	case body := <-q.messages:
		q.mu.Lock()
		q.seq++
		receipt := fmt.Sprintf("receipt-%d", q.seq)
		q.inFlight[receipt] = body
		q.mu.Unlock()
		return &sqs.ReceiveMessageOutput{
			Messages: []types.Message{{Body: aws.String(body), ReceiptHandle: aws.String(receipt)}},
		}, nil
	}
}

func (q *MemoryQueue) DeleteMessage(_ context.Context, params *sqs.DeleteMessageInput, _ ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	receipt := aws.ToString(params.ReceiptHandle)
	body, ok := q.inFlight[receipt]
	if !ok {
		return nil, fmt.Errorf("unknown receipt handle %q", receipt)
	}
	delete(q.inFlight, receipt)
	q.deleted = append(q.deleted, body)
	return &sqs.DeleteMessageOutput{}, nil
}

// Deleted returns the bodies of the messages consumed successfully.
func (q *MemoryQueue) Deleted() []string {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]string(nil), q.deleted...)
}

// TestApp is the whole inventory manager wired as in production, with the
// queue kept in memory.
type TestApp struct {
	Router  *gin.Engine
	Manager *service.ProductManager
	Queue   *MemoryQueue
}

// SetupApp starts the outbox worker and returns the HTTP router over a
// manager seeded with the sample products.
func SetupApp(t *testing.T, opts ...service.Option) *TestApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	queue := NewMemoryQueue()
	worker := service.NewOutboxWorker(sqspkg.NewPublisher(queue, testQueueURL), 10)
	go worker.Start(ctx)

	manager := service.NewProductManager(memory.NewProductRepository(model.SampleProducts()), worker, opts...)
	t.Cleanup(manager.Close)

	conf := &config.Config{AWS: config.AWSConfig{SQSQueueURL: testQueueURL}}
	router := httpAPI.InitRouter(gin.New(), controller.New(conf), controller.NewManagerController(manager))

	return &TestApp{Router: router, Manager: manager, Queue: queue}
}

// Do sends a JSON request to the app.
func (a *TestApp) Do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	return w
}

// State reads the current screen through the API.
func (a *TestApp) State(t *testing.T) controller.StateResponse {
	t.Helper()
	w := a.Do(t, http.MethodGet, "/api/state", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var state controller.StateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	return state
}
