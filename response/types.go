package response

// SourceInfo describes where the snapshots were read from
type SourceInfo struct {
	Provider    string `json:"provider" yaml:"provider" msgpack:"provider"`
	Location    string `json:"location" yaml:"location" msgpack:"location"`
	AccountID   string `json:"account_id,omitempty" yaml:"account_id,omitempty" msgpack:"account_id,omitempty"`
	AccountName string `json:"account_name,omitempty" yaml:"account_name,omitempty" msgpack:"account_name,omitempty"`
}

// Entry is the time spent under one key
type Entry struct {
	Key        string `json:"key" yaml:"key" msgpack:"key"`
	TotalMS    int64  `json:"total_ms" yaml:"total_ms" msgpack:"total_ms"`
	BusinessMS int64  `json:"business_ms" yaml:"business_ms" msgpack:"business_ms"`
	Total      string `json:"total" yaml:"total" msgpack:"total"`
	Business   string `json:"business" yaml:"business" msgpack:"business"`
}

// MonthReport lists the work items active during one month
type MonthReport struct {
	Month       string  `json:"month" yaml:"month" msgpack:"month"`
	Start       string  `json:"start" yaml:"start" msgpack:"start"`
	End         string  `json:"end" yaml:"end" msgpack:"end"`
	ItemsActive int     `json:"items_active" yaml:"items_active" msgpack:"items_active"`
	Items       []Entry `json:"items" yaml:"items" msgpack:"items"`
}

// StateReport lists the time spent in each schedule state
type StateReport struct {
	StateCount int     `json:"state_count" yaml:"state_count" msgpack:"state_count"`
	States     []Entry `json:"states" yaml:"states" msgpack:"states"`
}

// Report is the full document written by the export workflow
type Report struct {
	Source      *SourceInfo  `json:"source,omitempty" yaml:"source,omitempty" msgpack:"source,omitempty"`
	GeneratedAt string       `json:"generated_at" yaml:"generated_at" msgpack:"generated_at"`
	Month       *MonthReport `json:"month,omitempty" yaml:"month,omitempty" msgpack:"month,omitempty"`
	States      *StateReport `json:"states,omitempty" yaml:"states,omitempty" msgpack:"states,omitempty"`
}

// BusinessTime is the reduction of a single interval
type BusinessTime struct {
	From       string `json:"from" yaml:"from" msgpack:"from"`
	To         string `json:"to" yaml:"to" msgpack:"to"`
	TotalMS    int64  `json:"total_ms" yaml:"total_ms" msgpack:"total_ms"`
	BusinessMS int64  `json:"business_ms" yaml:"business_ms" msgpack:"business_ms"`
	Total      string `json:"total" yaml:"total" msgpack:"total"`
	Business   string `json:"business" yaml:"business" msgpack:"business"`
}
