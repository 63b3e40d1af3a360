package enum

// ServiceType partitions both the item catalog and the order list
type ServiceType string

const (
	ServiceTypeHallmark ServiceType = "hallmark"
	ServiceTypeXray     ServiceType = "xray"
)

// ServiceTypes lists every valid service type
func ServiceTypes() []ServiceType {
	return []ServiceType{ServiceTypeHallmark, ServiceTypeXray}
}

// IsValid reports whether the value is a known service type
func (t ServiceType) IsValid() bool {
	return t == ServiceTypeHallmark || t == ServiceTypeXray
}

func (t ServiceType) String() string {
	return string(t)
}
