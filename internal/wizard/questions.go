package wizard

import (
	"github.com/bistrokit/cli/internal/settings"
	"github.com/bistrokit/cli/internal/templates"
)

func isMonorepo(a settings.Answers) bool {
	return a.Bool(settings.KeyProjectMonorepo)
}

func noneFirst(options ...Option) []Option {
	return append([]Option{{Label: "None", Value: "none"}}, options...)
}

// DefaultQuestions returns the interview in the order it is asked. Shared
// module questions are only asked for monorepos.
func DefaultQuestions() []Question {
	return []Question{
		{
			ID:       settings.KeyProjectName,
			Type:     QuestionTypeInput,
			Title:    "What is the full name of your project?",
			Validate: templates.ValidateProjectName,
		},
		{
			ID:       settings.KeyProjectAcronym,
			Type:     QuestionTypeInput,
			Title:    "What is a suitable acronym or abbreviation for your project (e.g., trigram)?",
			Validate: templates.ValidateAcronym,
		},
		{
			ID:       settings.KeyProjectOrganization,
			Type:     QuestionTypeInput,
			Title:    "What is the organization or company behind this project?",
			Validate: required("organization"),
		},
		{
			ID:      settings.KeyProjectMonorepo,
			Type:    QuestionTypeConfirm,
			Title:   "Will your project be structured as a monorepo (multiple packages in one repository)?",
			Default: false,
		},
		{
			ID:        settings.KeySharedUILib,
			Type:      QuestionTypeConfirm,
			Title:     "Will you have a shared UI component library?",
			Default:   false,
			Condition: isMonorepo,
		},
		{
			ID:        settings.KeySharedStorybook,
			Type:      QuestionTypeConfirm,
			Title:     "Will you use Storybook for component documentation and development?",
			Default:   false,
			Condition: isMonorepo,
		},
		{
			ID:        settings.KeySharedUtilsLib,
			Type:      QuestionTypeConfirm,
			Title:     "Will you have a shared library for common utilities and helper functions?",
			Default:   false,
			Condition: isMonorepo,
		},
		{
			ID:    settings.KeyFrontendFramework,
			Type:  QuestionTypeSelect,
			Title: "Which frontend framework will you be using?",
			Options: []Option{
				{Label: "React", Value: string(settings.FrameworkReact)},
				{Label: "Angular", Value: string(settings.FrameworkAngular)},
			},
		},
		{
			ID:    settings.KeyFrontendRenderingType,
			Type:  QuestionTypeSelect,
			Title: "How will your frontend be rendered?",
			Options: []Option{
				{Label: "CSR (Client-Side Rendering)", Value: string(settings.RenderingCSR)},
				{Label: "SSR (Server-Side Rendering)", Value: string(settings.RenderingSSR)},
				{Label: "SSG (Static Site Generation)", Value: string(settings.RenderingSSG)},
			},
		},
		{
			ID:    settings.KeyFrontendStylingFramework,
			Type:  QuestionTypeSelect,
			Title: "Which styling approach will you use for your frontend?",
			Options: []Option{
				{Label: "None (plain CSS/SCSS)", Value: "none"},
				{Label: "Styled Components (CSS-in-JS)", Value: "styled-components"},
				{Label: "Chakra UI (component library)", Value: settings.UILibChakra},
				{Label: "Ant Design (component library)", Value: settings.UILibAntd},
				{Label: "Material UI (component library)", Value: "material-ui"},
				{Label: "Tailwind CSS (utility-first CSS)", Value: "tailwind"},
			},
		},
		{
			ID:    settings.KeyFrontendStateManagementFramework,
			Type:  QuestionTypeSelect,
			Title: "Which state management solution do you prefer for your frontend?",
			Options: noneFirst(
				Option{Label: "TanStack Query (for data fetching and caching)", Value: "tanStack-query"},
				Option{Label: "Zustand (lightweight state management)", Value: "zustand"},
				Option{Label: "Redux Toolkit (RTK Query included)", Value: "rtk-query"},
			),
		},
		{
			ID:    settings.KeyFrontendSchemaValidationFramework,
			Type:  QuestionTypeSelect,
			Title: "Which schema validation library do you prefer for your frontend?",
			Options: noneFirst(
				Option{Label: "Zod", Value: "zod"},
				Option{Label: "Yup", Value: "yup"},
			),
		},
		{
			ID:    settings.KeyFrontendE2EFramework,
			Type:  QuestionTypeSelect,
			Title: "Which end-to-end (E2E) testing framework will you use?",
			Options: noneFirst(
				Option{Label: "Cypress", Value: "cypress"},
				Option{Label: "Playwright", Value: "playwright"},
			),
		},
	}
}
