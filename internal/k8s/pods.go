package k8s

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/tapcraft-io/kdbg/internal/exec"
	"github.com/tapcraft-io/kdbg/internal/logging"
	"github.com/tapcraft-io/kdbg/pkg/types"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	utiljson "k8s.io/apimachinery/pkg/util/json"
)

// Runner runs a kubectl command and captures its output
type Runner interface {
	Execute(ctx context.Context, args []string) *exec.ExecuteResult
}

// PodQuerier lists pods by asking kubectl for JSON
type PodQuerier struct {
	runner Runner
	logger *slog.Logger
}

// NewPodQuerier creates a querier backed by runner
func NewPodQuerier(runner Runner, logger *slog.Logger) *PodQuerier {
	if logger == nil {
		logger = logging.Discard()
	}
	return &PodQuerier{
		runner: runner,
		logger: logging.WithOperation(logger, "list-pods"),
	}
}

// List returns the pods of one namespace, or of all namespaces when namespace
// is empty. It issues exactly one kubectl call and never retries.
func (q *PodQuerier) List(ctx context.Context, namespace string) ([]types.PodRecord, error) {
	result := q.runner.Execute(ctx, exec.ListPodsArgs(namespace))
	if result.Error != nil {
		detail := strings.TrimSpace(result.Stderr)
		if detail == "" {
			detail = result.Error.Error()
		}
		return nil, fmt.Errorf("%w: %s", ErrTransport, detail)
	}

	pods, err := DecodePodList([]byte(result.Stdout))
	if err != nil {
		return nil, err
	}

	q.logger.Debug("listed pods", logging.Namespace(namespace), slog.Int("count", len(pods)))
	return pods, nil
}

// DecodePodList decodes `kubectl get pods -o json` output. Missing fields take
// their documented defaults; only a document that is not a JSON object fails.
func DecodePodList(data []byte) ([]types.PodRecord, error) {
	// util/json keeps integers as int64, which unstructured expects
	var doc map[string]interface{}
	if err := utiljson.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	items, found, err := unstructured.NestedSlice(doc, "items")
	if err != nil || !found {
		return []types.PodRecord{}, nil
	}

	pods := make([]types.PodRecord, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		pods = append(pods, decodePod(obj))
	}

	return pods, nil
}

func decodePod(obj map[string]interface{}) types.PodRecord {
	return types.PodRecord{
		Name:         stringField(obj, types.UnknownName, "metadata", "name"),
		Namespace:    stringField(obj, types.UnknownName, "metadata", "namespace"),
		Phase:        corev1.PodPhase(stringField(obj, string(corev1.PodUnknown), "status", "phase")),
		RestartCount: restartCount(obj),
		CreatedAt:    creationTime(obj),
	}
}

func stringField(obj map[string]interface{}, fallback string, fields ...string) string {
	v, found, err := unstructured.NestedString(obj, fields...)
	if err != nil || !found {
		return fallback
	}
	return v
}

// restartCount reads the first container status only
func restartCount(obj map[string]interface{}) int32 {
	statuses, found, err := unstructured.NestedSlice(obj, "status", "containerStatuses")
	if err != nil || !found || len(statuses) == 0 {
		return 0
	}

	first, ok := statuses[0].(map[string]interface{})
	if !ok {
		return 0
	}

	n, found, err := unstructured.NestedInt64(first, "restartCount")
	if err != nil || !found || n < 0 {
		return 0
	}
	return int32(n)
}

func creationTime(obj map[string]interface{}) time.Time {
	ts, found, err := unstructured.NestedString(obj, "metadata", "creationTimestamp")
	if err != nil || !found {
		return time.Time{}
	}

	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return time.Time{}
	}
	return t
}
