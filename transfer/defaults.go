package transfer

import (
	"errors"

	"productlib/models"
	"productlib/store"

	"go.uber.org/zap"
)

func defaultModules() []models.Module {
	return []models.Module{
		{
			Title:       "茉莉平台 结构振动仿真模块",
			Description: "用于结构振动特性的精确分析",
			ImageURL:    "images/modules/struct.png",
			Industry:    "航空",
			Subject:     "结构仿真模块",
		},
		{
			Title:       "茉莉平台 流体振动仿真模块",
			Description: "用于流体振动特性的精确分析",
			ImageURL:    "images/modules/fluid.png",
			Industry:    "船舶",
			Subject:     "流体仿真模块",
		},
	}
}

func defaultPartners() []models.Partner {
	return []models.Partner{{Name: "HUAWEI", LogoURL: "images/partners/huawei.png"}}
}

func defaultClients() []models.Client {
	return []models.Client{{Type: "合作单位", Name: "Example Corp", Value: "Key Client"}}
}

func defaultCases() []models.Case {
	return []models.Case{{ImageURL: "images/cases/case1.jpg", Case: "航空发动机振动分析", Value: "成功案例"}}
}

// SeedDefaults inserts the built-in sample records. Each one is matched by
// its natural key (title, name or case text), so re-running adds nothing.
func (m *Merger) SeedDefaults() (*Report, error) {
	report := &Report{Source: "defaults"}

	err := m.Store.Transaction(func(tx *store.Store) error {
		report.Entities = report.Entities[:0]

		modules := EntityReport{Entity: "Module"}
		for _, mod := range defaultModules() {
			_, lookupErr := tx.FindModuleByTitle(mod.Title)
			if err := m.addDefault(&modules, mod.Title, lookupErr, func() error { return tx.InsertModule(&mod) }); err != nil {
				return err
			}
		}

		partners := EntityReport{Entity: "Partner"}
		for _, p := range defaultPartners() {
			_, lookupErr := tx.FindPartnerByName(p.Name)
			if err := m.addDefault(&partners, p.Name, lookupErr, func() error { return tx.InsertPartner(&p) }); err != nil {
				return err
			}
		}

		clients := EntityReport{Entity: "Client"}
		for _, c := range defaultClients() {
			_, lookupErr := tx.FindClientByName(c.Name)
			if err := m.addDefault(&clients, c.Name, lookupErr, func() error { return tx.InsertClient(&c) }); err != nil {
				return err
			}
		}

		cases := EntityReport{Entity: "Case"}
		for _, c := range defaultCases() {
			_, lookupErr := tx.FindCaseByName(c.Case)
			if err := m.addDefault(&cases, c.Case, lookupErr, func() error { return tx.InsertCase(&c) }); err != nil {
				return err
			}
		}

		report.Entities = append(report.Entities, modules, partners, clients, cases)
		return nil
	})
	if err != nil {
		m.Log.Error("default seed rolled back", zap.Error(err))
		return report, err
	}

	m.logReport(report)
	return report, nil
}

// addDefault inserts one default record unless lookupErr says it exists.
func (m *Merger) addDefault(er *EntityReport, key string, lookupErr error, insert func() error) error {
	switch {
	case lookupErr == nil:
		m.Log.Debug("default record already present", zap.String("entity", er.Entity), zap.String("key", key))
		er.Skipped++
		return nil
	case !errors.Is(lookupErr, store.ErrNotFound):
		m.Log.Warn("skipping default record with failed lookup",
			zap.String("entity", er.Entity), zap.String("key", key), zap.Error(lookupErr))
		er.Failed++
		return nil
	}

	if err := insert(); err != nil {
		return err
	}
	m.Log.Debug("default record added", zap.String("entity", er.Entity), zap.String("key", key))
	er.Added++
	return nil
}
