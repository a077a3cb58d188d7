package service

// NavigationSignal is an abstract navigation request emitted by the core and
// consumed by the external navigation shell.
type NavigationSignal string

const (
	// NavigateReturnToList is emitted after a successful create or update.
	NavigateReturnToList NavigationSignal = "return_to_list"
	// NavigateGoToSignIn is emitted when an operation discovers there is no
	// authenticated session.
	NavigateGoToSignIn NavigationSignal = "go_to_sign_in"
)

// Navigator fans navigation signals out to the presentation shell.
type Navigator interface {
	// ReturnToList signals that the editing flow completed.
	ReturnToList()

	// GoToSignIn signals that the caller must authenticate first.
	GoToSignIn()

	// Subscribe registers a signal consumer. The returned cancel func
	// releases the subscription.
	Subscribe() (<-chan NavigationSignal, func())
}
