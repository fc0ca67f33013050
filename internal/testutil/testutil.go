package testutil

import (
	"time"

	"inncheck/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

func unixDate(year int, month time.Month, day int) int64 {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Unix()
}

// OzonGeneralInfo is a healthy active company: accredited, profitable,
// known employee count.
func OzonGeneralInfo() *domain.GeneralInfo {
	return &domain.GeneralInfo{
		Name:              `ООО "ОЗОН ТЕХНОЛОГИИ"`,
		Tin:               7703475603,
		IncorporationDate: unixDate(2019, time.May, 13),
		AuthorizedCapital: 10_000_000,
		EmployeesNumber:   4641,
		Address:           "123112,  Г.МОСКВА, НАБ. ПРЕСНЕНСКАЯ, Д. 10, ПОМЕЩ. I, ЭТАЖ 41, КОМН. 7",
		Status:            domain.StatusActive,
		Accreditation:     domain.AccreditationCredited,
		SalaryDelays:      false,
		Year:              2022,
		Profit:            629_831_000,
		Income:            18_646_681_000,
	}
}

// OzonLegalEntityInfo has two domestic company shareholders and no
// wage-arrears proceedings.
func OzonLegalEntityInfo() *domain.LegalEntityInfo {
	return &domain.LegalEntityInfo{
		BasicInfo: domain.BasicInfo{
			Name:              `ООО "ОЗОН ТЕХНОЛОГИИ"`,
			Tin:               7703475603,
			IncorporationDate: unixDate(2019, time.May, 13),
			AuthorizedCapital: 10_000_000,
			EmployeesNumber:   4641,
			Address:           "123112,  Г.МОСКВА, НАБ. ПРЕСНЕНСКАЯ, Д. 10, ПОМЕЩ. I, ЭТАЖ 41, КОМН. 7",
			Status:            domain.StatusActive,
			Manager: domain.Manager{
				Name:     "ДЬЯЧЕНКО ВАЛЕРИЙ ВАЛЕРЬЕВИЧ",
				Position: "ГЕНЕРАЛЬНЫЙ ДИРЕКТОР",
				Tin:      501202997792,
			},
			Shareholders: []domain.Shareholder{
				{
					Name:  `ООО "ОЗОН ХОЛДИНГ"`,
					Share: 9_900_000,
					Size:  99,
					Tin:   7743181857,
					Type:  domain.EntityCompany,
				},
				{
					Name:  `ООО "ИНТЕРНЕТ РЕШЕНИЯ"`,
					Share: 100_000,
					Size:  1,
					Tin:   7704217370,
					Type:  domain.EntityCompany,
				},
			},
		},
		FinanceInfo: domain.FinanceInfo{
			Year:                2022,
			Income:              18_646_681_000,
			Profit:              629_831_000,
			AccountsReceivable:  3_034_497_000,
			CapitalAndReserves:  630_971_000,
			LongTermLiabilities: 11_151_000,
			CurrentLiabilities:  3_276_394_000,
			PaidSalary:          15_839_326_000,
		},
	}
}

// SvyaznoyGeneralInfo is a distressed company: in termination, no
// accreditation, salary delays, unknown employee count, loss-making.
func SvyaznoyGeneralInfo() *domain.GeneralInfo {
	return &domain.GeneralInfo{
		Name:              `ООО "СЕТЬ СВЯЗНОЙ"`,
		Tin:               7714617793,
		IncorporationDate: unixDate(2005, time.September, 20),
		AuthorizedCapital: 32_143_400,
		EmployeesNumber:   -1,
		Address:           "123007,  Г.Москва, ПР-Д 2-Й ХОРОШЁВСКИЙ, Д. 9, К. 2, ЭТАЖ 5 КОМН 4",
		Status:            domain.StatusInTermination,
		Accreditation:     domain.AccreditationUnknown,
		SalaryDelays:      true,
		Year:              2022,
		Profit:            -48_544_335_000,
		Income:            56_759_628_000,
	}
}

// SvyaznoyLegalEntityInfo mixes one domestic company shareholder with
// three foreign ones and carries wage-arrears proceedings.
func SvyaznoyLegalEntityInfo() *domain.LegalEntityInfo {
	return &domain.LegalEntityInfo{
		BasicInfo: domain.BasicInfo{
			Name:              `ООО "СЕТЬ СВЯЗНОЙ"`,
			Tin:               7714617793,
			IncorporationDate: unixDate(2005, time.September, 20),
			AuthorizedCapital: 32_143_400,
			EmployeesNumber:   -1,
			Address:           "123007,  Г.Москва, ПР-Д 2-Й ХОРОШЁВСКИЙ, Д. 9, К. 2, ЭТАЖ 5 КОМН 4",
			Status:            domain.StatusInTermination,
			Manager: domain.Manager{
				Name:     "АНГЕЛЕВСКИ ФИЛИПП МИТРЕВИЧ",
				Position: "КОНКУРСНЫЙ УПРАВЛЯЮЩИЙ",
				Tin:      231906423308,
			},
			Shareholders: []domain.Shareholder{
				{
					Name:  "ДТСРЕТЕЙЛ ЛТД",
					Share: 22_258_645,
					Size:  69.25,
					Tin:   -1,
					Type:  domain.EntityForeignCompany,
				},
				{
					Name:  `АО "ГРУППА КОМПАНИЙ "СВЯЗНОЙ"`,
					Share: 1_804_755,
					Size:  5.61,
					Tin:   7703534714,
					Type:  domain.EntityCompany,
				},
				{
					Name:  "СИННАМОН ШОР ЛТД.",
					Share: 80_800,
					Size:  0.25,
					Tin:   -1,
					Type:  domain.EntityForeignCompany,
				},
				{
					Name:  "ЕВРОСЕТЬ ХОЛДИНГ Н.В.",
					Share: 7_999_200,
					Size:  24.89,
					Tin:   -1,
					Type:  domain.EntityForeignCompany,
				},
			},
		},
		FinanceInfo: domain.FinanceInfo{
			Year:                2022,
			Income:              56_759_628_000,
			Profit:              -48_544_335_000,
			AccountsReceivable:  4_243_988_000,
			CapitalAndReserves:  -44_883_153_000,
			LongTermLiabilities: 12_450_192_000,
			CurrentLiabilities:  54_133_768_000,
			PaidSalary:          -6_302_428_000,
		},
		ProceedingsInfo: domain.ProceedingsInfo{
			Count:       21,
			Amount:      1843596.67,
			Description: "Оплата труда и иные выплаты по трудовым правоотношениям",
		},
	}
}
