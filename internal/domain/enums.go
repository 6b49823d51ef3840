package domain

// EquipmentStatus is the condition of a tracked asset.
type EquipmentStatus string

const (
	EquipmentStatusGood        EquipmentStatus = "GOOD"
	EquipmentStatusWarning     EquipmentStatus = "WARNING"
	EquipmentStatusCritical    EquipmentStatus = "CRITICAL"
	EquipmentStatusMaintenance EquipmentStatus = "MAINTENANCE"
)

func (s EquipmentStatus) String() string { return string(s) }

func (s EquipmentStatus) IsValid() bool {
	switch s {
	case EquipmentStatusGood, EquipmentStatusWarning, EquipmentStatusCritical, EquipmentStatusMaintenance:
		return true
	}
	return false
}

// EquipmentStatuses lists every status in display order.
func EquipmentStatuses() []EquipmentStatus {
	return []EquipmentStatus{
		EquipmentStatusGood,
		EquipmentStatusWarning,
		EquipmentStatusCritical,
		EquipmentStatusMaintenance,
	}
}

// MaintenanceType classifies a maintenance event.
type MaintenanceType string

const (
	MaintenanceTypeRoutine    MaintenanceType = "ROUTINE"
	MaintenanceTypeRepair     MaintenanceType = "REPAIR"
	MaintenanceTypeInspection MaintenanceType = "INSPECTION"
	MaintenanceTypeEmergency  MaintenanceType = "EMERGENCY"
)

func (t MaintenanceType) String() string { return string(t) }

func (t MaintenanceType) IsValid() bool {
	switch t {
	case MaintenanceTypeRoutine, MaintenanceTypeRepair, MaintenanceTypeInspection, MaintenanceTypeEmergency:
		return true
	}
	return false
}
