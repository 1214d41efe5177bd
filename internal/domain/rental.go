package domain

// FuelLevel представляет уровень топлива при выдаче автомобиля
type FuelLevel string

const (
	FuelEmpty         FuelLevel = "VACIO"
	FuelQuarter       FuelLevel = "CUARTO"
	FuelHalf          FuelLevel = "MEDIO"
	FuelThreeQuarters FuelLevel = "TRES_CUARTOS"
	FuelFull          FuelLevel = "LLENO"
)

// FuelLevels - все допустимые уровни, от пустого к полному
var FuelLevels = []FuelLevel{
	FuelEmpty,
	FuelQuarter,
	FuelHalf,
	FuelThreeQuarters,
	FuelFull,
}

// IsValid проверяет, что уровень топлива входит в перечисление
func (f FuelLevel) IsValid() bool {
	for _, known := range FuelLevels {
		if f == known {
			return true
		}
	}
	return false
}

// Inventory - контрольный чек-лист комплектации при выдаче.
// Фиксированный набор флагов: свет, зеркала, салон, безопасность,
// инструменты и документы.
type Inventory struct {
	// Luces
	Headlights     bool `json:"lucesPrincipales"`
	BrakeLights    bool `json:"lucesStop"`
	ReverseLights  bool `json:"lucesRetroceso"`
	TurnSignals    bool `json:"lucesGiro"`
	HazardLights   bool `json:"balizasLuminosas"`
	InteriorLights bool `json:"lucesInteriores"`

	// Espejos y cristales
	InteriorMirror bool `json:"espejoInterior"`
	SideMirrors    bool `json:"espejosLaterales"`
	Windshield     bool `json:"parabrisas"`
	RearWindow     bool `json:"luneta"`
	SideWindows    bool `json:"vidriosLaterales"`
	WindowCranks   bool `json:"levantaVidrios"`

	// Interior
	Upholstery     bool `json:"tapizados"`
	FloorMats      bool `json:"alfombras"`
	Radio          bool `json:"radio"`
	Speakers       bool `json:"parlantes"`
	Antenna        bool `json:"antena"`
	Lighter        bool `json:"encendedor"`
	Ashtray        bool `json:"cenicero"`
	DashboardClock bool `json:"relojTablero"`
	InnerHandles   bool `json:"manijasInternas"`
	SeatBelts      bool `json:"cinturones"`
	Horn           bool `json:"bocina"`

	// Seguridad y herramientas
	FireExtinguisher bool `json:"matafuego"`
	WarningTriangles bool `json:"balizas"`
	FirstAidKit      bool `json:"botiquin"`
	SpareWheel       bool `json:"ruedaAuxilio"`
	Jack             bool `json:"crique"`
	WheelWrench      bool `json:"llaveRueda"`
	ToolKit          bool `json:"herramientas"`
	FuelCap          bool `json:"tapaCombustible"`
	RadiatorCap      bool `json:"tapaRadiador"`
	OilDipstick      bool `json:"varillaAceite"`

	// Documentación
	GreenCard     bool `json:"tarjetaVerde"`
	OwnersManual  bool `json:"manualUso"`
	InsuranceCard bool `json:"seguroVehiculo"`
}

// Rental - акт выдачи автомобиля ("entrega").
// Активна, пока не заполнена дата возврата; после возврата
// километраж возврата не может быть меньше километража выдачи.
type Rental struct {
	ID        string `json:"id"`
	VehicleID string `json:"vehiculoId"`
	ClientID  string `json:"clienteId"`

	DeliveringOfficial    string `json:"funcionarioEntrega"`
	DeliveringOfficialDNI string `json:"dniFuncionarioEntrega"`
	ReceivingOfficial     string `json:"funcionarioRecibe"`
	ReceivingOfficialDNI  string `json:"dniFuncionarioRecibe"`

	DeliveryDate     string    `json:"fechaEntrega"`
	DeliveryPlace    string    `json:"lugarEntrega"`
	DeliveryOdometer int       `json:"kilometrajeEntrega"`
	FuelLevel        FuelLevel `json:"nivelCombustible"`

	Inventory Inventory `json:"inventario"`

	ReturnDate     string `json:"fechaDevolucion,omitempty"`
	ReturnPlace    string `json:"lugarDevolucion,omitempty"`
	ReturnOdometer *int   `json:"kilometrajeDevolucion,omitempty"`
	Observations   string `json:"observaciones,omitempty"`
}

// IsActive сообщает, отдан ли автомобиль в данный момент
func (r *Rental) IsActive() bool {
	return r.ReturnDate == ""
}
