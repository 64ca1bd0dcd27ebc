package service

import (
	"strings"

	"github.com/fleettrack/internal/constants"
)

// statusTransitions 严格模式下允许的状态流转表
// completed 与 failed 为终态，不允许再流出
var statusTransitions = map[string][]string{
	constants.DeliveryStatusPending: {
		constants.DeliveryStatusInProgress,
		constants.DeliveryStatusDelayed,
		constants.DeliveryStatusFailed,
	},
	constants.DeliveryStatusInProgress: {
		constants.DeliveryStatusCompleted,
		constants.DeliveryStatusFailed,
		constants.DeliveryStatusDelayed,
	},
	constants.DeliveryStatusDelayed: {
		constants.DeliveryStatusInProgress,
		constants.DeliveryStatusCompleted,
		constants.DeliveryStatusFailed,
	},
	constants.DeliveryStatusCompleted: {},
	constants.DeliveryStatusFailed:    {},
}

// NormalizeDeliveryStatus 归一化状态字符串，非法状态返回空串
func NormalizeDeliveryStatus(status string) string {
	normalized := strings.ToLower(strings.TrimSpace(status))
	for _, known := range constants.DeliveryStatuses {
		if normalized == known {
			return known
		}
	}
	return ""
}

// IsLegalTransition 判断严格模式下 from 到 to 是否为合法流转
// 同状态覆盖写视为合法
func IsLegalTransition(from, to string) bool {
	from = NormalizeDeliveryStatus(from)
	to = NormalizeDeliveryStatus(to)
	if from == "" || to == "" {
		return false
	}
	if from == to {
		return true
	}
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsTerminalStatus 判断是否为终态
func IsTerminalStatus(status string) bool {
	normalized := NormalizeDeliveryStatus(status)
	return normalized == constants.DeliveryStatusCompleted || normalized == constants.DeliveryStatusFailed
}
