package services

// SkillService serves the ordered skill list
type SkillService struct {
	skills []string
}

// NewSkillService creates a new SkillService
func NewSkillService(skills []string) *SkillService {
	return &SkillService{skills: append([]string(nil), skills...)}
}

// GetAll returns every skill in display order
func (s *SkillService) GetAll() []string {
	return append([]string(nil), s.skills...)
}

// Take returns the first n skills
func (s *SkillService) Take(n int) []string {
	out := make([]string, bound(n, len(s.skills)))
	copy(out, s.skills)
	return out
}
