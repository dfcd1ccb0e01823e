package usecase

// MinRecurrence は「複数ポートフォリオに出現した」とみなす最小出現数です（count > 1）。
const MinRecurrence = 2

// Recurrence は企業名ごとに出現したポートフォリオ（ソース）の集合を数えます。
// 同一ソース内の重複は1回として数えます。企業名は完全一致で比較します。
type Recurrence struct {
	sources map[string]map[string]struct{}
}

// NewRecurrence は空のRecurrenceを生成します。
func NewRecurrence() *Recurrence {
	return &Recurrence{sources: make(map[string]map[string]struct{})}
}

// Add はsourceでnameが採用されたことを記録します。
func (r *Recurrence) Add(source, name string) {
	if name == "" {
		return
	}
	set, ok := r.sources[name]
	if !ok {
		set = make(map[string]struct{})
		r.sources[name] = set
	}
	set[source] = struct{}{}
}

// Count はnameが出現したソース数を返します。
func (r *Recurrence) Count(name string) int {
	return len(r.sources[name])
}

// Recurring は出現ソース数がthreshold以上の企業名とその数を返します。
func (r *Recurrence) Recurring(threshold int) map[string]int {
	out := make(map[string]int)
	for name := range r.sources {
		if n := r.Count(name); n >= threshold {
			out[name] = n
		}
	}
	return out
}
