package models

import "time"

type InstitutionKind string

const (
	KindGiftedCenter InstitutionKind = "gifted_center"
	KindScienceHigh  InstitutionKind = "science_high"
	KindUniversity   InstitutionKind = "university"
	KindOther        InstitutionKind = "other"
)

type DifficultyTier string

const (
	TierElementary   DifficultyTier = "elementary"
	TierMiddle       DifficultyTier = "middle"
	TierHigh         DifficultyTier = "high"
	TierProfessional DifficultyTier = "professional"
	TierPublic       DifficultyTier = "public"
)

// UploadedReference is a user-supplied document snippet attached to a
// profile. Content arrives inline; immutable once attached.
type UploadedReference struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	MediaType string `json:"type"`
	Content   string `json:"content"`
	SizeBytes int64  `json:"size"`
}

type InterviewProfile struct {
	ID          string              `json:"id,omitempty"`
	Kind        InstitutionKind     `json:"type"`
	Institution string              `json:"institution"`
	Fields      []string            `json:"fields"`
	Keywords    []string            `json:"keywords"`
	StyleNotes  string              `json:"additionalStyle"`
	References  []UploadedReference `json:"uploadedFiles,omitempty"`
	Difficulty  DifficultyTier      `json:"difficulty,omitempty"`
	CreatedAt   *time.Time          `json:"createdAt,omitempty"`
}

// Clone returns a deep copy so stored profiles and session snapshots never
// alias the caller's slices.
func (p *InterviewProfile) Clone() *InterviewProfile {
	if p == nil {
		return nil
	}
	out := *p
	out.Fields = append([]string(nil), p.Fields...)
	out.Keywords = append([]string(nil), p.Keywords...)
	out.References = append([]UploadedReference(nil), p.References...)
	if p.CreatedAt != nil {
		t := *p.CreatedAt
		out.CreatedAt = &t
	}
	return &out
}
