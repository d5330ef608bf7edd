package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	corev1 "k8s.io/api/core/v1"
)

func TestRenderPhase(t *testing.T) {
	phases := []corev1.PodPhase{
		corev1.PodRunning,
		corev1.PodPending,
		corev1.PodFailed,
		corev1.PodSucceeded,
		corev1.PodUnknown,
		"CrashLoopBackOff",
	}

	for _, phase := range phases {
		assert.Equal(t, string(phase), RenderPhase(phase))
	}
}

func TestRenderMessages(t *testing.T) {
	assert.Equal(t, "[INFO] Logs for pod", RenderInfo("Logs for pod"))
	assert.Equal(t, "[INFO] Executing", RenderNotice("Executing"))
	assert.Equal(t, "[WARN] metrics", RenderWarning("metrics"))
	assert.Equal(t, "[SUCCESS] Pod deleted", RenderSuccess("Pod deleted"))
}

func TestFprintError(t *testing.T) {
	var buf bytes.Buffer
	FprintError(&buf, "boom")
	assert.Equal(t, "[ERROR] boom\n", buf.String())
}

func TestFprintError_FollowsWriter(t *testing.T) {
	SetColorEnabled(true)
	t.Cleanup(func() { SetColorEnabled(false) })

	// A buffer is not a terminal, whatever stdout is
	var buf bytes.Buffer
	FprintError(&buf, "boom")
	assert.Equal(t, "[ERROR] boom\n", buf.String())
}

func TestColorEnabled(t *testing.T) {
	t.Cleanup(func() { SetColorEnabled(false) })

	SetColorEnabled(true)
	assert.True(t, ColorEnabled())
	SetColorEnabled(false)
	assert.False(t, ColorEnabled())
}

func TestRenderTitle(t *testing.T) {
	assert.Equal(t, "Pods:", RenderTitle("Pods:", ""))
	assert.Equal(t, "Pods: [context: dev]", RenderTitle("Pods:", "dev"))
}

func TestRenderRule(t *testing.T) {
	rule := RenderRule()
	assert.Len(t, rule, RuleWidth)
	assert.Equal(t, strings.Repeat("-", RuleWidth), rule)
}

func TestRenderTarget(t *testing.T) {
	assert.Equal(t, "web-1 (namespace: prod)", RenderTarget("web-1", "prod"))
}
