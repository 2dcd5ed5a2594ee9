package application

import (
	"termfolio/internal/domain/entities"
	"termfolio/internal/ports/output"
)

type SocialService struct {
	socialRepo output.SocialRepository
}

func NewSocialService(socialRepo output.SocialRepository) *SocialService {
	return &SocialService{socialRepo: socialRepo}
}

func (s *SocialService) All() []entities.Social {
	all := s.socialRepo.All()
	out := make([]entities.Social, len(all))
	copy(out, all)
	return out
}

// Email returns the first mailto social.
func (s *SocialService) Email() (entities.Social, bool) {
	for _, social := range s.socialRepo.All() {
		if social.IsEmail() {
			return social, true
		}
	}
	return entities.Social{}, false
}
