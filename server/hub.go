package server

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gorilla/websocket"

	"vlm/aircraft"
	"vlm/model"
	"vlm/operating_point"
	"vlm/solver"
)

// Hub 维护一条前端连接，按消息类型分发求解请求并推送结果
type Hub struct {
	s    *solver.Solver
	op   *operating_point.OperatingPoint
	conn *websocket.Conn
	// request
	msg chan model.Msg
	// response
	envSet      chan model.Msg
	ran         chan model.Msg
	stability   chan model.Msg
	streamlines chan model.Msg
	// 连接关闭时广播退出
	done chan struct{}

	streamlineReq model.StreamlineReqData
}

func NewHub() *Hub {
	return &Hub{
		msg:         make(chan model.Msg, 10),
		envSet:      make(chan model.Msg, 10),
		ran:         make(chan model.Msg, 10),
		stability:   make(chan model.Msg, 10),
		streamlines: make(chan model.Msg, 10),
		done:        make(chan struct{}),
	}
}

// 默认演示环境：矩形平板机翼，10 m/s 来流，5 度迎角
func defaultOperatingPoint() *operating_point.OperatingPoint {
	return &operating_point.OperatingPoint{
		Velocity: 10,
		Alpha:    5,
	}
}

func (h *Hub) setEnv(content string) error {
	var env model.Env
	if err := json.Unmarshal([]byte(content), &env); err != nil {
		return err
	}
	airplane, err := aircraft.FromEnv(&env)
	if err != nil {
		return err
	}
	s, err := solver.NewSolver(airplane, solver.LoadedConfig())
	if err != nil {
		return err
	}
	h.s = s
	h.op = &operating_point.OperatingPoint{
		Atmosphere: operating_point.Atmosphere{Altitude: env.Altitude},
		Velocity:   env.Velocity,
		Alpha:      env.Alpha,
		Beta:       env.Beta,
		P:          env.P,
		Q:          env.Q,
		R:          env.R,
	}
	return nil
}

func (h *Hub) reply(msg model.Msg) {
	if err := h.conn.WriteJSON(&msg); err != nil {
		log.Println("err: ", err)
	}
}

func (h *Hub) replyErr(err error) {
	h.reply(model.Msg{Type: "error", Content: err.Error()})
}

func (h *Hub) handleResponse() {
	for {
		select {
		case <-h.done:
			return
		case reply := <-h.envSet:
			h.reply(reply)
		case reply := <-h.ran:
			data, err := h.s.Run(h.op)
			if err != nil {
				h.replyErr(err)
				continue
			}
			body, err := json.Marshal(data)
			if err != nil {
				log.Println("err: ", err)
				continue
			}
			reply.Content = string(body)
			h.reply(reply)
		case reply := <-h.stability:
			data, err := h.s.RunWithStabilityDerivatives(h.op, solver.AllDerivatives())
			if err != nil {
				h.replyErr(err)
				continue
			}
			body, err := json.Marshal(data)
			if err != nil {
				log.Println("err: ", err)
				continue
			}
			reply.Content = string(body)
			h.reply(reply)
		case reply := <-h.streamlines:
			req := h.streamlineReq
			lines, err := h.s.CalculateStreamlines(nil, req.NSteps, req.Length)
			if err != nil {
				h.replyErr(err)
				continue
			}
			body, err := json.Marshal(solver.EncodeStreamlines(lines))
			if err != nil {
				log.Println("err: ", err)
				continue
			}
			reply.Content = string(body)
			h.reply(reply)
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
}

func (h *Hub) handleRequest() {
	for {
		select {
		case <-h.done:
			return
		case msg := <-h.msg:
			switch msg.Type {
			case "env":
				if err := h.setEnv(msg.Content); err != nil {
					h.replyErr(err)
					continue
				}
				h.envSet <- model.Msg{
					Type:    "envSet",
					Content: "env is set",
				}
			case "run":
				h.ran <- model.Msg{
					Type: "ran",
				}
			case "stability":
				h.stability <- model.Msg{
					Type: "stabilityRan",
				}
			case "streamlines":
				var req model.StreamlineReqData
				if msg.Content != "" {
					if err := json.Unmarshal([]byte(msg.Content), &req); err != nil {
						h.replyErr(err)
						continue
					}
				}
				h.streamlineReq = req
				h.streamlines <- model.Msg{
					Type: "streamlinesTraced",
				}
			default:
				log.Println("no such type")
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
}
