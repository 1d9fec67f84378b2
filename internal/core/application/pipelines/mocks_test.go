package pipelines_test

import (
	"context"
	"io"
	"log/slog"

	"supplyorders/internal/core/domain/model/order"
	"supplyorders/internal/core/domain/model/product"

	"github.com/stretchr/testify/mock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockOrderGateway struct{ mock.Mock }

func (m *MockOrderGateway) Open(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderGateway) Close() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockOrderGateway) IsConnected() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockOrderGateway) OrdersByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderGateway) OrdersToConfirm(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderGateway) OrderStatus(ctx context.Context, id int64) (order.Status, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(order.Status), args.Error(1)
}

func (m *MockOrderGateway) OrderPositions(ctx context.Context, orderID int64) ([]*product.Product, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockOrderGateway) ConfirmedOrderPositions(ctx context.Context, orderID int64) ([]*product.Product, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockOrderGateway) UpdateProcessedQuantity(ctx context.Context, productID int64, quantity int) error {
	args := m.Called(ctx, productID, quantity)
	return args.Error(0)
}

func (m *MockOrderGateway) SaveCreationResult(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderGateway) SaveResponseResult(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderGateway) UpdateOrderStatus(ctx context.Context, status order.Status, id int64) error {
	args := m.Called(ctx, status, id)
	return args.Error(0)
}

func (m *MockOrderGateway) SetOrderComment(ctx context.Context, comment string, id int64) error {
	args := m.Called(ctx, comment, id)
	return args.Error(0)
}

func (m *MockOrderGateway) SetFtpStatus(ctx context.Context, id int64, status order.FtpStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockOrderGateway) SetFtpFile(ctx context.Context, id int64, fileName string) error {
	args := m.Called(ctx, id, fileName)
	return args.Error(0)
}

func (m *MockOrderGateway) FtpDirectory(ctx context.Context, clientCompanyID int) (string, error) {
	args := m.Called(ctx, clientCompanyID)
	return args.String(0), args.Error(1)
}

type MockFileStorage struct{ mock.Mock }

func (m *MockFileStorage) CountFiles(dir, pattern string) (int, error) {
	args := m.Called(dir, pattern)
	return args.Int(0), args.Error(1)
}

func (m *MockFileStorage) ListFiles(dir, pattern string) ([]string, error) {
	args := m.Called(dir, pattern)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockFileStorage) MoveFile(srcDir, dstDir, srcName, dstName string) error {
	args := m.Called(srcDir, dstDir, srcName, dstName)
	return args.Error(0)
}

func (m *MockFileStorage) ClearDir(dir string) error {
	args := m.Called(dir)
	return args.Error(0)
}

func (m *MockFileStorage) CreateZip(srcDir, dstPath string) error {
	args := m.Called(srcDir, dstPath)
	return args.Error(0)
}

func (m *MockFileStorage) DirExists(path string) bool {
	args := m.Called(path)
	return args.Bool(0)
}

func (m *MockFileStorage) WriteTextFile(path, content string) error {
	args := m.Called(path, content)
	return args.Error(0)
}

type MockFtpClient struct{ mock.Mock }

func (m *MockFtpClient) Open(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockFtpClient) Close() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockFtpClient) IsConnected() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockFtpClient) DirExists(ctx context.Context, dir string) (bool, error) {
	args := m.Called(ctx, dir)
	return args.Bool(0), args.Error(1)
}

func (m *MockFtpClient) Upload(ctx context.Context, localPath, remotePath string) error {
	args := m.Called(ctx, localPath, remotePath)
	return args.Error(0)
}

type MockOrderFileWriter struct{ mock.Mock }

func (m *MockOrderFileWriter) WriteOrderFile(o *order.Order) (string, error) {
	args := m.Called(o)
	return args.String(0), args.Error(1)
}

type MockResponseParser struct{ mock.Mock }

func (m *MockResponseParser) Parse(fileName string) (*order.Response, error) {
	args := m.Called(fileName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Response), args.Error(1)
}

type MockExportEncoder struct{ mock.Mock }

func (m *MockExportEncoder) CreateExportFiles(o *order.Order) error {
	args := m.Called(o)
	return args.Error(0)
}
