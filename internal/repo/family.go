package repo

import "sportstroy-calc-backend/internal/domain"

// Family — описание одного семейства продуктов: ключи типов данных
// удалённого хранилища и дефолты из кода.
type Family struct {
	Name      string
	PricesKey string
	CoeffsKey string // пустой, если у семейства нет коэффициентов
	FixedKey  string // только для УСП на круглой трубе

	DefaultPrices func() *domain.PriceTable
	DefaultCoeffs domain.Coefficients
	DefaultFixed  func() map[string]domain.FixedValue
}

func CoverageFamily() Family {
	return Family{
		Name:          "coverage",
		PricesKey:     "prices",
		DefaultPrices: domain.DefaultCoveragePrices,
	}
}

func HockeyFamily() Family {
	return Family{
		Name:          "hockey",
		PricesKey:     "hockey_prices",
		CoeffsKey:     "hockey_coefficients",
		DefaultPrices: domain.DefaultHockeyPrices,
		DefaultCoeffs: domain.DefaultHockeyCoefficients(),
	}
}

func USPFamily() Family {
	return Family{
		Name:          "usp",
		PricesKey:     "usp_prices",
		CoeffsKey:     "usp_coefficients",
		DefaultPrices: domain.DefaultUSPPrices,
		DefaultCoeffs: domain.DefaultUSPCoefficients(),
	}
}

func USPRoundFamily() Family {
	return Family{
		Name:          "usp_round",
		PricesKey:     "usp_round_prices",
		CoeffsKey:     "usp_round_coefficients",
		FixedKey:      "usp_round_fixed_values",
		DefaultPrices: domain.DefaultUSPRoundPrices,
		DefaultCoeffs: domain.DefaultUSPRoundCoefficients(),
		DefaultFixed:  domain.DefaultUSPRoundFixedValues,
	}
}
