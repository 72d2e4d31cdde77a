package model

// AccountInfo identifies the cloud account or project a source lives in.
type AccountInfo struct {
	Provider    string
	AccountID   string
	AccountName string
}

// SourceInfo describes where a snapshot set was read from.
type SourceInfo struct {
	Provider    string
	Location    string
	AccountID   string
	AccountName string
}

// WithAccount copies the account fields of info onto the source. A nil info
// leaves the source unchanged.
func (s SourceInfo) WithAccount(info *AccountInfo) SourceInfo {
	if info == nil {
		return s
	}
	s.AccountID = info.AccountID
	s.AccountName = info.AccountName
	return s
}
