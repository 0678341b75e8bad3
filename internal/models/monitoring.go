package models

// Layout kolom sheet MONITORING (0-based). Baris pertama adalah header.
const (
	MonitoringColTimestamp = 0
	MonitoringColUser      = 1
	MonitoringColSerialOnt = 2
	MonitoringColSerialStb = 3
	MonitoringColSerialAp  = 4
	MonitoringColNik       = 5
	MonitoringColOwner     = 6
	MonitoringColType      = 7
	MonitoringColSector    = 8
	MonitoringColStatus    = 9
)

// TimestampLayout format waktu di kolom TIMESTAMP sheet MONITORING.
const TimestampLayout = "2006-01-02 15:04:05"

// MonitoringRow adalah satu baris event reservasi di sheet MONITORING.
type MonitoringRow struct {
	Timestamp string
	User      string
	SerialOnt string
	SerialStb string
	SerialAp  string
	Nik       string
	Owner     string
	Type      string
	Sector    string
	Status    string
}

// ParseMonitoringRow membaca baris mentah menjadi MonitoringRow.
func ParseMonitoringRow(row []string) MonitoringRow {
	return MonitoringRow{
		Timestamp: CellAt(row, MonitoringColTimestamp),
		User:      CellAt(row, MonitoringColUser),
		SerialOnt: CellAt(row, MonitoringColSerialOnt),
		SerialStb: CellAt(row, MonitoringColSerialStb),
		SerialAp:  CellAt(row, MonitoringColSerialAp),
		Nik:       CellAt(row, MonitoringColNik),
		Owner:     CellAt(row, MonitoringColOwner),
		Type:      CellAt(row, MonitoringColType),
		Sector:    CellAt(row, MonitoringColSector),
		Status:    CellAt(row, MonitoringColStatus),
	}
}

// Values menyusun baris untuk AppendRow, urutannya sesuai layout kolom.
func (r MonitoringRow) Values() []string {
	return []string{
		r.Timestamp,
		r.User,
		r.SerialOnt,
		r.SerialStb,
		r.SerialAp,
		r.Nik,
		r.Owner,
		r.Type,
		r.Sector,
		r.Status,
	}
}

// Serials mengembalikan tiga kolom SN dengan urutan ONT, STB, AP.
func (r MonitoringRow) Serials() [3]string {
	return [3]string{r.SerialOnt, r.SerialStb, r.SerialAp}
}
