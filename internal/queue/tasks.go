package queue

import (
	"encoding/json"

	"github.com/Karthikeyanbk4067/FitX/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderShip 订单延迟发货任务
	TaskOrderShip = constants.TaskOrderShip
)

// OrderShipPayload 延迟发货任务载荷
type OrderShipPayload struct {
	OrderID uint `json:"order_id"`
}

// NewOrderShipTask 创建延迟发货任务
func NewOrderShipTask(payload OrderShipPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderShip, body), nil
}
