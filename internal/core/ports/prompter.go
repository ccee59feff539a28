package ports

// Prompter asks the user a yes/no question.
//
//go:generate go run go.uber.org/mock/mockgen -source=prompter.go -destination=mocks/mock_prompter.go -package=mocks
type Prompter interface {
	Confirm(question string) (bool, error)
}
