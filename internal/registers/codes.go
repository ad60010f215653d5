package registers

// WarningCode is a two-digit hex code read from the warning register.
type WarningCode string

// Warning codes. 0A and 0B are not used by the warning register.
const (
	WarningNone                          WarningCode = "00"
	WarningMotorCommunicationInterrupted WarningCode = "01"
	WarningMTPNotLoadedOnShovel          WarningCode = "02"
	WarningMTPNotUnloadedFromShovel      WarningCode = "03"
	WarningShovelNotExtended             WarningCode = "04"
	WarningProcessTimeout                WarningCode = "05"
	WarningLiftDoorNotOpen               WarningCode = "06"
	WarningLiftDoorNotClosed             WarningCode = "07"
	WarningShovelNotRetracted            WarningCode = "08"
	WarningInitDueToOpenDoor             WarningCode = "09"
	WarningTransferStationNotRotated     WarningCode = "0C"
	WarningOtherMotorFaultInitPhytron    WarningCode = "0D"
	WarningCarouselReinitialization      WarningCode = "0E"
)

// WarningTable is the warning register family.
var WarningTable = mustTable(FamilyWarning,
	Entry[WarningCode]{WarningNone, "NO_WARNING", "No warning"},
	Entry[WarningCode]{WarningMotorCommunicationInterrupted, "COMMUNICATION_WITH_MOTOR_CONTROLLERS_INTERRUPTED", "Communication with motor controllers interrupted"},
	Entry[WarningCode]{WarningMTPNotLoadedOnShovel, "MTP_NOT_LOADED_ON_HANDLER_SHOVEL", "MTP not loaded on handler shovel"},
	Entry[WarningCode]{WarningMTPNotUnloadedFromShovel, "MTP_NOT_UNLOADED_FROM_HANDLER_SHOVEL", "MTP not unloaded from handler shovel"},
	Entry[WarningCode]{WarningShovelNotExtended, "SHOVEL_NOT_EXTENDED_HANDLER_MOVEMENT_ERROR", "Shovel not extended (handler movement error)"},
	Entry[WarningCode]{WarningProcessTimeout, "PROCESS_TIMEOUT", "Process timeout"},
	Entry[WarningCode]{WarningLiftDoorNotOpen, "AUTOMATIC_LIFT_DOOR_NOT_OPEN", "Automatic lift door not open"},
	Entry[WarningCode]{WarningLiftDoorNotClosed, "AUTOMATIC_LIFT_DOOR_NOT_CLOSED", "Automatic lift door not closed"},
	Entry[WarningCode]{WarningShovelNotRetracted, "SHOVEL_NOT_RETRACTED", "Shovel not retracted"},
	Entry[WarningCode]{WarningInitDueToOpenDoor, "INITIALIZATION_DUE_TO_OPEN_DEVICE_DOOR", "Initialization due to open device door"},
	Entry[WarningCode]{WarningTransferStationNotRotated, "TRANSFER_STATION_NOT_ROTATED", "Transfer station not rotated"},
	Entry[WarningCode]{WarningOtherMotorFaultInitPhytron, "OTHER_MOTOR_FAULT_INIT_PHYTRON", "Other motor fault (Phytron init)"},
	Entry[WarningCode]{WarningCarouselReinitialization, "REINITIALIZATION_CAROUSEL", "Carousel reinitialization"},
)

// String returns the symbolic warning name.
func (c WarningCode) String() string { return WarningTable.name(c) }

func (c WarningCode) rawCode() string { return string(c) }

// ErrorCode is a two-digit hex code read from the error register.
// It shares numbers with WarningCode but is a separate register.
type ErrorCode string

const (
	ErrorNone                              ErrorCode = "00"
	ErrorMotorCommunicationInterrupted     ErrorCode = "01"
	ErrorNoMTPLoadedOnShovel               ErrorCode = "02"
	ErrorNoMTPUnloadedFromShovel           ErrorCode = "03"
	ErrorShovelNotExtended                 ErrorCode = "04"
	ErrorProcessTimeout                    ErrorCode = "05"
	ErrorLiftDoorNotOpen                   ErrorCode = "06"
	ErrorLiftDoorNotClosed                 ErrorCode = "07"
	ErrorShovelNotRetracted                ErrorCode = "08"
	ErrorStepperControllerTemperatureHigh  ErrorCode = "0A"
	ErrorOtherStepperControllerError       ErrorCode = "0B"
	ErrorTransferStationNotRotated         ErrorCode = "0C"
	ErrorHeatingAndGasCommunicationFailure ErrorCode = "0D"
	ErrorFatalDuringErrorRoutine           ErrorCode = "FF"
)

// ErrorTable is the error register family.
var ErrorTable = mustTable(FamilyError,
	Entry[ErrorCode]{ErrorNone, "NO_ERROR", "No error"},
	Entry[ErrorCode]{ErrorMotorCommunicationInterrupted, "COMMUNICATION_WITH_MOTOR_CONTROLLERS_INTERRUPTED", "Communication with motor controllers interrupted"},
	Entry[ErrorCode]{ErrorNoMTPLoadedOnShovel, "NO_MTP_LOADED_ON_HANDLER_SHOVEL", "No MTP loaded on handler shovel"},
	Entry[ErrorCode]{ErrorNoMTPUnloadedFromShovel, "NO_MTP_UNLOADED_FROM_HANDLER_SHOVEL", "No MTP unloaded from handler shovel"},
	Entry[ErrorCode]{ErrorShovelNotExtended, "SHOVEL_NOT_EXTENDED_AUTOMATIC_UNIT_POSITION_ERROR", "Shovel not extended (automatic unit position error)"},
	Entry[ErrorCode]{ErrorProcessTimeout, "PROCESS_TIMEOUT", "Process timeout"},
	Entry[ErrorCode]{ErrorLiftDoorNotOpen, "AUTOMATIC_LIFT_DOOR_NOT_OPEN", "Automatic lift door not open"},
	Entry[ErrorCode]{ErrorLiftDoorNotClosed, "AUTOMATIC_LIFT_DOOR_NOT_CLOSED", "Automatic lift door not closed"},
	Entry[ErrorCode]{ErrorShovelNotRetracted, "SHOVEL_NOT_RETRACTED", "Shovel not retracted"},
	Entry[ErrorCode]{ErrorStepperControllerTemperatureHigh, "STEPPER_MOTOR_CONTROLLER_TEMPERATURE_TOO_HIGH", "Stepper motor controller temperature too high"},
	Entry[ErrorCode]{ErrorOtherStepperControllerError, "OTHER_STEPPER_MOTOR_CONTROLLER_ERROR", "Other stepper motor controller error"},
	Entry[ErrorCode]{ErrorTransferStationNotRotated, "TRANSFER_STATION_NOT_ROTATED", "Transfer station not rotated"},
	Entry[ErrorCode]{ErrorHeatingAndGasCommunicationFailure, "COMMUNICATION_WITH_HEATING_CONTROLLERS_AND_GAS_SUPPLY_DISTURBED", "Communication with heating controllers and gas supply disturbed"},
	Entry[ErrorCode]{ErrorFatalDuringErrorRoutine, "FATAL_ERROR_OCCURRED_DURING_ERROR_ROUTINE", "Fatal error occurred during error routine"},
)

// String returns the symbolic error name.
func (c ErrorCode) String() string { return ErrorTable.name(c) }

func (c ErrorCode) rawCode() string { return string(c) }

// DecodeWarning decodes a warning register token such as "0C".
func DecodeWarning(token string) (WarningCode, error) {
	if err := checkCode(token); err != nil {
		return "", err
	}
	e, err := WarningTable.Lookup(WarningCode(token))
	if err != nil {
		return "", err
	}
	return e.Code, nil
}

// DecodeError decodes an error register token such as "FF".
func DecodeError(token string) (ErrorCode, error) {
	if err := checkCode(token); err != nil {
		return "", err
	}
	e, err := ErrorTable.Lookup(ErrorCode(token))
	if err != nil {
		return "", err
	}
	return e.Code, nil
}
