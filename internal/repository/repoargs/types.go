package repoargs

const (
	AccountRepoName    = "account"
	PlanRepoName       = "plan"
	WithdrawalRepoName = "withdrawal"
	DepositRepoName    = "deposit"
	AllocationRepoName = "allocation"
	CounterRepoName    = "counter"
)
