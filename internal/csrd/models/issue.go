package models

import (
	"slices"
	"strings"
)

// Issue is a materiality issue (enjeu). Ids are allocated per report in
// creation order; the parent is stored as an id, never as a pointer.
type Issue struct {
	ID          int64  `json:"id"`
	ParentID    *int64 `json:"parent_id,omitempty"`
	ESRS        ESRS   `json:"esrs"`
	Name        string `json:"nom"`
	Description string `json:"description,omitempty"`
	Editable    bool   `json:"modifiable"`
	Selected    bool   `json:"selection"`
	// Material is nil until the issue has been analysed.
	Material *bool `json:"materiel"`
}

// Issues is a filterable list. Every filter keeps the receiver order.
type Issues []Issue

func (is Issues) filter(keep func(Issue) bool) Issues {
	out := Issues{}
	for _, i := range is {
		if keep(i) {
			out = append(out, i)
		}
	}
	return out
}

func (is Issues) Selected() Issues {
	return is.filter(func(i Issue) bool { return i.Selected })
}

func (is Issues) NonSelected() Issues {
	return is.filter(func(i Issue) bool { return !i.Selected })
}

func (is Issues) Editable() Issues {
	return is.filter(func(i Issue) bool { return i.Editable })
}

// Material lists the selected issues analysed as material.
func (is Issues) Material() Issues {
	return is.Selected().filter(func(i Issue) bool { return i.Material != nil && *i.Material })
}

// NonMaterial lists the selected issues analysed as not material.
func (is Issues) NonMaterial() Issues {
	return is.Selected().filter(func(i Issue) bool { return i.Material != nil && !*i.Material })
}

// Analyzed lists the selected issues with a materiality answer.
func (is Issues) Analyzed() Issues {
	return is.Selected().filter(func(i Issue) bool { return i.Material != nil })
}

func (is Issues) NotAnalyzed() Issues {
	return is.Selected().filter(func(i Issue) bool { return i.Material == nil })
}

func (is Issues) Environment() Issues {
	return is.byPrefix("ESRS_E")
}

func (is Issues) Social() Issues {
	return is.byPrefix("ESRS_S")
}

func (is Issues) Governance() Issues {
	return is.byPrefix("ESRS_G")
}

func (is Issues) byPrefix(prefix string) Issues {
	return is.filter(func(i Issue) bool { return strings.HasPrefix(string(i.ESRS), prefix) })
}

// ByCode lists the issues of one standard in display order: standard issues
// first, then custom ones, each group by creation order.
func (is Issues) ByCode(code ESRS) Issues {
	out := is.filter(func(i Issue) bool { return i.ESRS == code })
	slices.SortStableFunc(out, func(a, b Issue) int {
		switch {
		case a.Editable == b.Editable:
			return 0
		case !a.Editable:
			return -1
		default:
			return 1
		}
	})
	return out
}

// CountByCode counts issues per standard. Standards without issues are absent.
func (is Issues) CountByCode() map[ESRS]int {
	counts := map[ESRS]int{}
	for _, i := range is {
		counts[i.ESRS]++
	}
	return counts
}
