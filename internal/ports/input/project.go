package input

import "termfolio/internal/domain/entities"

type ProjectUseCase interface {
	All() []entities.Project
	Featured() []entities.Project
	ByCategory(category string) []entities.Project
	ByTitle(title string) (entities.Project, error)
	WithImages() []entities.Project
	WithExplanation() []entities.Project
	Ordered() []entities.Project
}

type SocialUseCase interface {
	All() []entities.Social
	Email() (entities.Social, bool)
}
