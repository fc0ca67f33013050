package domain

// LegalEntityStatus is the registry status of a company.
type LegalEntityStatus int

const (
	StatusActive LegalEntityStatus = iota
	StatusBankruptcy
	StatusInReorganization
	StatusInTermination
	StatusTerminated
)

// AccreditationState is the IT-accreditation status of a company.
type AccreditationState int

const (
	AccreditationUnknown AccreditationState = iota
	AccreditationCredited
	AccreditationNotCredited
)

// EntityType classifies a shareholder.
type EntityType int

const (
	EntityIndividual EntityType = iota
	EntityCompany
	EntityForeignCompany
)

// GeneralInfo is the short report shape returned by the provider.
// All money amounts are rubles, IncorporationDate is unix seconds,
// EmployeesNumber < 0 means "no data".
type GeneralInfo struct {
	Name              string             `json:"name"`
	Tin               int64              `json:"tin"`
	IncorporationDate int64              `json:"incorporation_date"`
	AuthorizedCapital int64              `json:"authorized_capital"`
	EmployeesNumber   int64              `json:"employees_number"`
	Address           string             `json:"address"`
	Status            LegalEntityStatus  `json:"legal_entity_status"`
	Accreditation     AccreditationState `json:"accreditation_state"`
	SalaryDelays      bool               `json:"salary_delays"`
	Year              int                `json:"year"`
	Profit            int64              `json:"profit"`
	Income            int64              `json:"income"`
}

// Manager is the head of a company.
type Manager struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Tin      int64  `json:"tin"`
}

// Shareholder is one owner of a company. Tin <= 0 means the TIN is
// not applicable (foreign entity).
type Shareholder struct {
	Name  string     `json:"name"`
	Tin   int64      `json:"tin"`
	Share int64      `json:"share"`
	Size  float64    `json:"size"`
	Type  EntityType `json:"type"`
}

// BasicInfo is the identification block of the extended report.
type BasicInfo struct {
	Name              string            `json:"name"`
	Tin               int64             `json:"tin"`
	IncorporationDate int64             `json:"incorporation_date"`
	AuthorizedCapital int64             `json:"authorized_capital"`
	EmployeesNumber   int64             `json:"employees_number"`
	Address           string            `json:"address"`
	Status            LegalEntityStatus `json:"legal_entity_status"`
	Manager           Manager           `json:"manager"`
	Shareholders      []Shareholder     `json:"shareholders"`
}

// FinanceInfo is the latest yearly accounting report of a company.
type FinanceInfo struct {
	Year                int   `json:"year"`
	Income              int64 `json:"income"`
	Profit              int64 `json:"profit"`
	AccountsReceivable  int64 `json:"accounts_receivable"`
	CapitalAndReserves  int64 `json:"capital_and_reserves"`
	LongTermLiabilities int64 `json:"long_term_liabilities"`
	CurrentLiabilities  int64 `json:"current_liabilities"`
	PaidSalary          int64 `json:"paid_salary"`
}

// ProceedingsInfo aggregates enforcement proceedings over unpaid
// wages. Count == 0 means no known arrears.
type ProceedingsInfo struct {
	Count       int     `json:"count"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// LegalEntityInfo is the extended report shape returned by the provider.
type LegalEntityInfo struct {
	BasicInfo       BasicInfo       `json:"basic_info"`
	FinanceInfo     FinanceInfo     `json:"finance_info"`
	ProceedingsInfo ProceedingsInfo `json:"proceedings_info"`
}
