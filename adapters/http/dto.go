package http

import (
	profileUC "github.com/dijkstra-edu/dataforge/internal/application/usecase/profile"
	"github.com/dijkstra-edu/dataforge/internal/domain/certification"
	"github.com/dijkstra-edu/dataforge/internal/domain/education"
	"github.com/dijkstra-edu/dataforge/internal/domain/location"
	"github.com/dijkstra-edu/dataforge/internal/domain/profile"
	"github.com/dijkstra-edu/dataforge/internal/domain/project"
	"github.com/dijkstra-edu/dataforge/internal/domain/publication"
	"github.com/dijkstra-edu/dataforge/internal/domain/volunteering"
	"github.com/dijkstra-edu/dataforge/internal/domain/workexperience"
)

// EducationItemDTO swaps the stored location reference for the resolved
// sub-object. The outer Location field shadows the embedded id's json
// key; a failed resolution serializes as null.
type EducationItemDTO struct {
	*education.Education
	Location *location.Location `json:"location"`
}

type WorkExperienceItemDTO struct {
	*workexperience.WorkExperience
	Location *location.Location `json:"location"`
}

// FullProfileDTO is the composite read-model. Collections are always
// arrays, never null, even when a section failed to load; the leetcode
// key is always null on this path and served by its own endpoints.
type FullProfileDTO struct {
	Profile        *profile.Profile               `json:"profile"`
	Education      []EducationItemDTO             `json:"education"`
	WorkExperience []WorkExperienceItemDTO        `json:"work_experience"`
	Certifications []*certification.Certification `json:"certifications"`
	Publications   []*publication.Publication     `json:"publications"`
	Volunteering   []*volunteering.Volunteering   `json:"volunteering"`
	Projects       []*project.Project             `json:"projects"`
	Leetcode       any                            `json:"leetcode"`
}

func ToFullProfileDTO(out *profileUC.FullProfileOutput) FullProfileDTO {
	dto := FullProfileDTO{
		Profile:        out.Profile,
		Education:      make([]EducationItemDTO, 0, len(out.Education)),
		WorkExperience: make([]WorkExperienceItemDTO, 0, len(out.WorkExperience)),
		Certifications: out.Certifications,
		Publications:   out.Publications,
		Volunteering:   out.Volunteering,
		Projects:       out.Projects,
		Leetcode:       nil,
	}
	for _, item := range out.Education {
		dto.Education = append(dto.Education, EducationItemDTO{Education: item.Entry, Location: item.Location})
	}
	for _, item := range out.WorkExperience {
		dto.WorkExperience = append(dto.WorkExperience, WorkExperienceItemDTO{WorkExperience: item.Entry, Location: item.Location})
	}
	if dto.Certifications == nil {
		dto.Certifications = make([]*certification.Certification, 0)
	}
	if dto.Publications == nil {
		dto.Publications = make([]*publication.Publication, 0)
	}
	if dto.Volunteering == nil {
		dto.Volunteering = make([]*volunteering.Volunteering, 0)
	}
	if dto.Projects == nil {
		dto.Projects = make([]*project.Project, 0)
	}
	return dto
}
