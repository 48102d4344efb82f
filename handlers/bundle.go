package handlers

// HandlerBundle groups all endpoint handlers into one struct so route
// registration takes a single dependency.
type HandlerBundle struct {
	Auth      *AuthHandler
	Policy    *PolicyHandler
	User      *UserHandler
	Claim     *ClaimHandler
	Account   *AccountHandler
	Assign    *AssignHandler
	Dashboard *DashboardHandler
	Activity  *ActivityHandler
	Feedback  *FeedbackHandler
}
