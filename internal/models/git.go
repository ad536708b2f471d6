package models

// BranchStatus is the server-computed git state of an attempt's branch.
type BranchStatus struct {
	HeadOID               string `json:"head_oid"`
	HasUncommittedChanges bool   `json:"has_uncommitted_changes"`
	UncommittedCount      int    `json:"uncommitted_count"`
	UntrackedCount        int    `json:"untracked_count"`
	CommitsAhead          int    `json:"commits_ahead"`
	CommitsBehind         int    `json:"commits_behind"`
}

// CommitInfo is a human-readable summary of a single commit.
type CommitInfo struct {
	OID     string `json:"oid"`
	Subject string `json:"subject"`
}

// CommitComparison relates a commit to the branch HEAD with linear
// history detection. BehindFromHead counts commits that a reset to the
// compared commit would discard; counts are only meaningful when
// IsLinear.
type CommitComparison struct {
	AheadFromHead  int  `json:"ahead_from_head"`
	BehindFromHead int  `json:"behind_from_head"`
	IsLinear       bool `json:"is_linear"`
}

// UpToDate reports whether the compared commit is exactly HEAD.
func (c CommitComparison) UpToDate() bool {
	return c.AheadFromHead == 0 && c.BehindFromHead == 0
}
