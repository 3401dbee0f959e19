package laundry

// ServicesConfig is the snapshot persisted on a booking. The JSON shape is
// read back by every surface that renders a booking and must round-trip
// as-is.
type ServicesConfig struct {
	WeightTier     string        `json:"weightTier"`
	BaseService    *ServiceLine  `json:"baseService"`
	SelectedItems  []ServiceItem `json:"selectedItems"`
	SelectedAddOns []ServiceItem `json:"selectedAddOns"`
	CollectionFee  float64       `json:"collectionFee"`
}

type ServiceLine struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type ServiceItem struct {
	Key   string  `json:"key"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func NewServicesConfig(sel Selection) ServicesConfig {
	cfg := ServicesConfig{
		WeightTier:     sel.WeightTier,
		SelectedItems:  []ServiceItem{},
		SelectedAddOns: []ServiceItem{},
	}

	if tier, ok := tierByKey(sel.WeightTier); ok {
		cfg.BaseService = &ServiceLine{
			Name:  tier.Name,
			Price: tier.Price.InexactFloat64(),
		}
		if sel.DeliveryMethod == DeliveryCollection {
			cfg.CollectionFee = collectionFee.InexactFloat64()
		}
	}

	for _, key := range catalogueOrder {
		if sel.Items[key] <= 0 {
			continue
		}
		item := catalogue[key]
		cfg.SelectedItems = append(cfg.SelectedItems, ServiceItem{
			Key:   item.Key,
			Name:  item.Name,
			Price: item.Price.InexactFloat64(),
		})
	}

	for _, key := range addOnOrder {
		if !containsKey(sel.AddOns, key) {
			continue
		}
		addOn := addOns[key]
		cfg.SelectedAddOns = append(cfg.SelectedAddOns, ServiceItem{
			Key:   addOn.Key,
			Name:  addOn.Name,
			Price: addOn.Price.InexactFloat64(),
		})
	}

	return cfg
}
