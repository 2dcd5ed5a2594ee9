package output

import "termfolio/internal/domain/entities"

// ProjectRepository serves the project table in display order.
type ProjectRepository interface {
	All() []entities.Project
}

// SocialRepository serves the social links table in display order.
type SocialRepository interface {
	All() []entities.Social
}
