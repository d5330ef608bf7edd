package types

import (
	"fmt"
	"time"

	corev1 "k8s.io/api/core/v1"
)

// UnknownName is used for pod names and namespaces missing from a kubectl response
const UnknownName = "unknown"

// PodRecord is a read-only snapshot of one pod at query time
type PodRecord struct {
	Name         string
	Namespace    string
	Phase        corev1.PodPhase
	RestartCount int32
	// CreatedAt is the zero time when the creation timestamp was missing or unparsable
	CreatedAt time.Time
}

// HasAge reports whether the record carries a usable creation timestamp
func (r PodRecord) HasAge() bool {
	return !r.CreatedAt.IsZero()
}

// Target returns the identity of the record
func (r PodRecord) Target() Target {
	return Target{Name: r.Name, Namespace: r.Namespace}
}

// Target identifies exactly one pod that existed when it was resolved
type Target struct {
	Name      string
	Namespace string
}

func (t Target) String() string {
	return fmt.Sprintf("%s/%s", t.Namespace, t.Name)
}

// ListItem represents an item that can be selected from a list
type ListItem struct {
	Title       string
	Description string
	Target      Target
}

func (i ListItem) FilterValue() string {
	return i.Title
}

// TargetsToListItems converts resolution candidates to list items for selection
func TargetsToListItems(targets []Target) []ListItem {
	items := make([]ListItem, len(targets))
	for i, t := range targets {
		items[i] = ListItem{
			Title:       t.Name,
			Description: "namespace: " + t.Namespace,
			Target:      t,
		}
	}
	return items
}
