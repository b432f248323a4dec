package rules

// All returns every rule in display order.
func All() []Rule {
	return []Rule{
		CSRD{},
		BDESE{},
		IndexEgapro{},
		DispositifAlerte{},
		BGES{},
		AuditEnergetique{},
		AntiCorruption{},
		PlanVigilance{},
		DPEF{},
	}
}
